package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ivlasenko/bookvault/internal/common"
	"github.com/ivlasenko/bookvault/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, book *Book) (*Book, error) {

	query :=
		`INSERT INTO books (title, author)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, book.Title, book.Author).Scan(&book.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return book, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Book, error) {
	query :=
		`SELECT id, title, author FROM books
		 WHERE id = $1
		 `

	book := &Book{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&book.ID, &book.Title, &book.Author)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return book, nil
}

// List returns at most limit books, skipping the first skip records in id
// order. Serial ids follow insertion order.
func (r *PostgresRepository) List(ctx context.Context, skip, limit int) ([]*Book, error) {
	query :=
		`SELECT id, title, author FROM books
		 ORDER BY id
		 OFFSET $1 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*Book, 0)
	for rows.Next() {
		book := &Book{}
		if err := rows.Scan(&book.ID, &book.Title, &book.Author); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, book *Book) (*Book, error) {
	query :=
		`UPDATE books SET title = $1, author = $2
		 WHERE id = $3
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, book.Title, book.Author, book.ID).Scan(&book.ID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return book, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM books
		 WHERE id = $1
		 `

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
