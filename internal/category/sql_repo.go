package category

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

func (r *SQLRepo) List(ctx context.Context) ([]Category, error) {
	categories, err := database.Select[Category](ctx, r.db, `SELECT id, nom FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *SQLRepo) GetByName(ctx context.Context, nom string) (Category, error) {
	categories, err := database.Select[Category](ctx, r.db, `SELECT id, nom FROM categories WHERE nom = $1 ORDER BY id`, nom)
	if err != nil {
		return Category{}, fmt.Errorf("get category %q: %w", nom, err)
	}
	if len(categories) == 0 {
		return Category{}, ErrNotFound
	}
	return categories[0], nil
}

func (r *SQLRepo) Create(ctx context.Context, nom string) (Category, error) {
	res, err := r.db.Insert(ctx, `INSERT INTO categories (nom) VALUES ($1) RETURNING id`, nom)
	if err != nil {
		return Category{}, fmt.Errorf("create category %q: %w", nom, err)
	}
	return Category{ID: res.LastInsertID, Nom: nom}, nil
}

func (r *SQLRepo) DeleteByName(ctx context.Context, nom string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM categories WHERE nom = $1`, nom); err != nil {
		return fmt.Errorf("delete category %q: %w", nom, err)
	}
	return nil
}
