package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ivlasenko/bookvault/internal/server/books"
)

type bookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

type bookResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func toBookResponse(b *books.Book) bookResponse {
	return bookResponse{ID: b.ID, Title: b.Title, Author: b.Author}
}

func bookIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "bookID"), 10, 64)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	book, err := s.books.Create(r.Context(), req.Title, req.Author)
	if err != nil {
		s.logger.Error(r.Context(), "book create failed", "error", err.Error())
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", books.DefaultSkip)
	limit := queryInt(r, "limit", books.DefaultLimit)

	list, err := s.books.List(r.Context(), skip, limit)
	if err != nil {
		s.logger.Error(r.Context(), "book list failed", "error", err.Error())
		writeError(w, err)
		return
	}

	result := make([]bookResponse, 0, len(list))
	for _, b := range list {
		result = append(result, toBookResponse(b))
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDParam(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	book, err := s.books.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDParam(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	var req bookRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	book, err := s.books.Update(r.Context(), id, req.Title, req.Author)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDParam(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	if err := s.books.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Book deleted successfully"})
}
