package books

import (
	"context"
)

// Pagination defaults for List when the caller passes no values.
const (
	DefaultSkip  = 0
	DefaultLimit = 10
)

// Service exposes catalog operations over a Repository. Each call is a
// single-statement operation; there are no cross-request transactions.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, title, author string) (*Book, error) {
	return s.repo.Create(ctx, &Book{Title: title, Author: author})
}

func (s *Service) Get(ctx context.Context, id int64) (*Book, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns at most limit books after skipping skip records. Negative
// values fall back to the defaults.
func (s *Service) List(ctx context.Context, skip, limit int) ([]*Book, error) {
	if skip < 0 {
		skip = DefaultSkip
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.repo.List(ctx, skip, limit)
}

func (s *Service) Update(ctx context.Context, id int64, title, author string) (*Book, error) {
	return s.repo.Update(ctx, &Book{ID: id, Title: title, Author: author})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
