package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
)

const helpText = `Commands:
  signup          register a new user
  login           log in and keep a bearer token for this session
  passwd          change the password
  add             add a book
  get             show a book by id
  list            list books
  update          update a book by id
  delete          delete a book by id
  help            show this help
  exit            quit`

// Repl runs the interactive loop until "exit", EOF, or ctx cancellation.
func (a *App) Repl(ctx context.Context) {
	fmt.Fprintln(a.out, helpText)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		cmd, err := GetSimpleText(a.reader, "", a.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintf(a.out, "error: %v\n", err)
			continue
		}

		switch cmd {
		case "signup":
			a.SignUp(ctx)
		case "login":
			a.Login(ctx)
		case "passwd":
			a.ChangePassword(ctx)
		case "add":
			a.AddBook(ctx)
		case "get":
			a.GetBook(ctx)
		case "list":
			a.ListBooks(ctx)
		case "update":
			a.UpdateBook(ctx)
		case "delete":
			a.DeleteBook(ctx)
		case "help":
			fmt.Fprintln(a.out, helpText)
		case "exit":
			return
		case "":
			// ignore empty lines
		default:
			fmt.Fprintf(a.out, "unknown command %q, try \"help\"\n", cmd)
		}
	}
}
