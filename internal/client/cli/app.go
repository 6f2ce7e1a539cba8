// Package cli implements the interactive command loop of the BookVault
// client: auth commands plus catalog commands over the HTTP API.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/ivlasenko/bookvault/internal/client/api"
)

// apiClient is the server surface the commands need. *api.Client satisfies
// it; tests substitute a stub.
type apiClient interface {
	SignUp(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
	CreateBook(ctx context.Context, title, author string) (*api.Book, error)
	GetBook(ctx context.Context, id int64) (*api.Book, error)
	ListBooks(ctx context.Context, skip, limit int) ([]api.Book, error)
	UpdateBook(ctx context.Context, id int64, title, author string) (*api.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

type App struct {
	api      apiClient
	reader   *bufio.Reader
	out      io.Writer
	userName string
}

func NewApp(client apiClient) *App {
	return &App{
		api:    client,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	a.Repl(ctx)
}
