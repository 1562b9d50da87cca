package book

import (
	"context"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book with its self and auteurs links.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return withLinks(books), nil
}

// GetByISBN returns a book by its ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	b, err := s.repo.GetByISBN(ctx, isbn)
	if err != nil {
		return Book{}, err
	}
	b.addLinks()
	return b, nil
}

// ListByCategory returns the books of a category, ErrNotFound when there are none.
func (s *Service) ListByCategory(ctx context.Context, categoryName string) ([]Book, error) {
	books, err := s.repo.ListByCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNotFound
	}
	return withLinks(books), nil
}

// ListByAuthor returns the books of an author, ErrNotFound when there are none.
func (s *Service) ListByAuthor(ctx context.Context, authorName string) ([]Book, error) {
	books, err := s.repo.ListByAuthor(ctx, authorName)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNotFound
	}
	return withLinks(books), nil
}

// Create inserts a book attached to an existing author and category.
func (s *Service) Create(ctx context.Context, in CreateInput) error {
	return s.repo.Create(ctx, in)
}

// Delete removes a book, ErrNotFound when the ISBN matched nothing.
func (s *Service) Delete(ctx context.Context, isbn string) error {
	return s.repo.Delete(ctx, isbn)
}

func withLinks(books []Book) []Book {
	for i := range books {
		books[i].addLinks()
	}
	return books
}
