package books

import (
	"context"
)

// Repository is the book store abstraction. Lookup and mutation by an absent
// id return common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, book *Book) (*Book, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	List(ctx context.Context, skip, limit int) ([]*Book, error)
	Update(ctx context.Context, book *Book) (*Book, error)
	Delete(ctx context.Context, id int64) error
}
