package book

import (
	"context"
	"fmt"

	"libraryapi/internal/platform/database"
)

const bookColumns = `livres.isbn, livres.nom, livres.description, livres.auteur_id, livres.categorie_id`

type SQLRepo struct {
	db *database.Executor
}

func NewSQLRepo(db *database.Executor) *SQLRepo {
	return &SQLRepo{db: db}
}

func (r *SQLRepo) List(ctx context.Context) ([]Book, error) {
	query := `SELECT ` + bookColumns + ` FROM livres ORDER BY livres.isbn`
	books, err := database.Select[Book](ctx, r.db, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (r *SQLRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	query := `SELECT ` + bookColumns + ` FROM livres WHERE livres.isbn = $1`
	books, err := database.Select[Book](ctx, r.db, query, isbn)
	if err != nil {
		return Book{}, fmt.Errorf("get book %q: %w", isbn, err)
	}
	if len(books) == 0 {
		return Book{}, ErrNotFound
	}
	return books[0], nil
}

// ListByCategory selects the book columns only, so the category name never
// shadows the book name.
func (r *SQLRepo) ListByCategory(ctx context.Context, categoryName string) ([]Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM livres
		JOIN categories ON livres.categorie_id = categories.id
		WHERE categories.nom = $1
		ORDER BY livres.isbn`
	books, err := database.Select[Book](ctx, r.db, query, categoryName)
	if err != nil {
		return nil, fmt.Errorf("list books of category %q: %w", categoryName, err)
	}
	return books, nil
}

func (r *SQLRepo) ListByAuthor(ctx context.Context, authorName string) ([]Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM livres
		JOIN auteurs ON livres.auteur_id = auteurs.id
		WHERE auteurs.nom = $1
		ORDER BY livres.isbn`
	books, err := database.Select[Book](ctx, r.db, query, authorName)
	if err != nil {
		return nil, fmt.Errorf("list books of author %q: %w", authorName, err)
	}
	return books, nil
}

// Create resolves the author and category ids by name in the same statement.
// When either name matches nothing no row is inserted.
func (r *SQLRepo) Create(ctx context.Context, in CreateInput) error {
	const query = `
		INSERT INTO livres (isbn, nom, description, auteur_id, categorie_id)
		SELECT CAST($1 AS TEXT), CAST($2 AS TEXT), CAST($3 AS TEXT), auteurs.id, categories.id
		FROM auteurs, categories
		WHERE auteurs.nom = $4 AND categories.nom = $5`
	res, err := r.db.Exec(ctx, query, in.ISBN, in.Nom, in.Description, in.AuthorName, in.CategoryName)
	if err != nil {
		return fmt.Errorf("create book %q: %w", in.ISBN, err)
	}
	if res.RowsAffected == 0 {
		return ErrAssociationNotFound
	}
	return nil
}

func (r *SQLRepo) Delete(ctx context.Context, isbn string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM livres WHERE isbn = $1`, isbn)
	if err != nil {
		return fmt.Errorf("delete book %q: %w", isbn, err)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
