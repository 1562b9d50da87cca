package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	ListByCategory(ctx context.Context, categoryName string) ([]Book, error)
	ListByAuthor(ctx context.Context, authorName string) ([]Book, error)
	Create(ctx context.Context, in CreateInput) error
	Delete(ctx context.Context, isbn string) error
}
