package author

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=author

// Repository defines the contract for author storage.
type Repository interface {
	List(ctx context.Context) ([]Author, error)
	GetByName(ctx context.Context, nom string) (Author, error)
	Create(ctx context.Context, nom string) (Author, error)
	DeleteByName(ctx context.Context, nom string) error
	ListByBook(ctx context.Context, isbn string) ([]Author, error)
}
