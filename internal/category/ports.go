package category

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=category

// Repository defines the contract for category storage.
type Repository interface {
	List(ctx context.Context) ([]Category, error)
	GetByName(ctx context.Context, nom string) (Category, error)
	Create(ctx context.Context, nom string) (Category, error)
	DeleteByName(ctx context.Context, nom string) error
}
