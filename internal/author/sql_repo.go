package author

import (
	"context"
	"fmt"

	"libraryapi/internal/platform/database"
)

type SQLRepo struct {
	db *database.Executor
}

func NewSQLRepo(db *database.Executor) *SQLRepo {
	return &SQLRepo{db: db}
}

func (r *SQLRepo) List(ctx context.Context) ([]Author, error) {
	const query = `SELECT id, nom FROM auteurs ORDER BY id`
	authors, err := database.Select[Author](ctx, r.db, query)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

func (r *SQLRepo) GetByName(ctx context.Context, nom string) (Author, error) {
	const query = `SELECT id, nom FROM auteurs WHERE nom = $1 ORDER BY id`
	authors, err := database.Select[Author](ctx, r.db, query, nom)
	if err != nil {
		return Author{}, fmt.Errorf("get author %q: %w", nom, err)
	}
	if len(authors) == 0 {
		return Author{}, ErrNotFound
	}
	return authors[0], nil
}

func (r *SQLRepo) Create(ctx context.Context, nom string) (Author, error) {
	const query = `INSERT INTO auteurs (nom) VALUES ($1) RETURNING id`
	res, err := r.db.Insert(ctx, query, nom)
	if err != nil {
		return Author{}, fmt.Errorf("create author %q: %w", nom, err)
	}
	return Author{ID: res.LastInsertID, Nom: nom}, nil
}

func (r *SQLRepo) DeleteByName(ctx context.Context, nom string) error {
	const query = `DELETE FROM auteurs WHERE nom = $1`
	if _, err := r.db.Exec(ctx, query, nom); err != nil {
		return fmt.Errorf("delete author %q: %w", nom, err)
	}
	return nil
}

func (r *SQLRepo) ListByBook(ctx context.Context, isbn string) ([]Author, error) {
	const query = `
		SELECT auteurs.id, auteurs.nom
		FROM auteurs
		JOIN livres ON livres.auteur_id = auteurs.id
		WHERE livres.isbn = $1
		ORDER BY auteurs.id`
	authors, err := database.Select[Author](ctx, r.db, query, isbn)
	if err != nil {
		return nil, fmt.Errorf("list authors of book %q: %w", isbn, err)
	}
	return authors, nil
}
