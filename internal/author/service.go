package author

import (
	"context"

	"libraryapi/internal/httpx"
)

// Service provides author-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new author service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every author with a self link.
func (s *Service) List(ctx context.Context) ([]Author, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range authors {
		authors[i].Links = []httpx.Link{authors[i].selfLink()}
	}
	return authors, nil
}

// GetByName returns one author with a link to their books.
func (s *Service) GetByName(ctx context.Context, nom string) (Author, error) {
	a, err := s.repo.GetByName(ctx, nom)
	if err != nil {
		return Author{}, err
	}
	a.Links = []httpx.Link{a.booksLink()}
	return a, nil
}

// Create inserts an author and returns it with its self link.
func (s *Service) Create(ctx context.Context, nom string) (Author, error) {
	a, err := s.repo.Create(ctx, nom)
	if err != nil {
		return Author{}, err
	}
	a.Links = []httpx.Link{a.selfLink()}
	return a, nil
}

// Delete removes every author with that name. Deleting a name that matches
// nothing is not an error.
func (s *Service) Delete(ctx context.Context, nom string) error {
	return s.repo.DeleteByName(ctx, nom)
}

// ListByBook returns the authors of a book, or ErrNotFound when the book has
// none (unknown ISBN or author removed).
func (s *Service) ListByBook(ctx context.Context, isbn string) ([]Author, error) {
	authors, err := s.repo.ListByBook(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, ErrNotFound
	}
	for i := range authors {
		authors[i].Links = []httpx.Link{authors[i].selfLink()}
	}
	return authors, nil
}
