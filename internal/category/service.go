package category

import (
	"context"

	"libraryapi/internal/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].Links = []httpx.Link{categories[i].selfLink()}
	}
	return categories, nil
}

func (s *Service) GetByName(ctx context.Context, nom string) (Category, error) {
	c, err := s.repo.GetByName(ctx, nom)
	if err != nil {
		return Category{}, err
	}
	c.Links = []httpx.Link{c.booksLink()}
	return c, nil
}

func (s *Service) Create(ctx context.Context, nom string) (Category, error) {
	c, err := s.repo.Create(ctx, nom)
	if err != nil {
		return Category{}, err
	}
	c.Links = []httpx.Link{c.selfLink()}
	return c, nil
}

// Delete never reports a missing category.
func (s *Service) Delete(ctx context.Context, nom string) error {
	return s.repo.DeleteByName(ctx, nom)
}
