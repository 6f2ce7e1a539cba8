// Package db wires the repositories over a single *sql.DB connection and
// applies schema migrations at startup.
package db

import (
	"context"
	"database/sql"

	"github.com/ivlasenko/bookvault/internal/server/books"
	"github.com/ivlasenko/bookvault/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Books() books.Repository
}
