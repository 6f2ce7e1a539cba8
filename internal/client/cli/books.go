package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ivlasenko/bookvault/internal/common"
)

func (a *App) getBookID() (int64, error) {
	raw, err := GetSimpleText(a.reader, "Enter book id", a.out)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (a *App) AddBook(ctx context.Context) {
	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	author, err := GetSimpleText(a.reader, "Enter author", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	book, err := a.api.CreateBook(ctx, title, author)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Added book %d: %s by %s\n", book.ID, book.Title, book.Author)
}

func (a *App) GetBook(ctx context.Context) {
	id, err := a.getBookID()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	book, err := a.api.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "Book not found")
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "%d: %s by %s\n", book.ID, book.Title, book.Author)
}

func (a *App) ListBooks(ctx context.Context) {
	list, err := a.api.ListBooks(ctx, 0, 10)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "The catalog is empty")
		return
	}
	for _, book := range list {
		fmt.Fprintf(a.out, "%d: %s by %s\n", book.ID, book.Title, book.Author)
	}
}

func (a *App) UpdateBook(ctx context.Context) {
	id, err := a.getBookID()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	title, err := GetSimpleText(a.reader, "Enter new title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	author, err := GetSimpleText(a.reader, "Enter new author", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	book, err := a.api.UpdateBook(ctx, id, title, author)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "Book not found")
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Updated book %d: %s by %s\n", book.ID, book.Title, book.Author)
}

func (a *App) DeleteBook(ctx context.Context) {
	id, err := a.getBookID()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.api.DeleteBook(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "Book not found")
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Book deleted")
}
