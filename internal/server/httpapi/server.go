// Package httpapi exposes the auth and catalog services over an HTTP JSON
// API: /auth/signup, /auth/login, /auth/changepassword and /books CRUD.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/ivlasenko/bookvault/internal/logging"
	"github.com/ivlasenko/bookvault/internal/server/books"
	"github.com/ivlasenko/bookvault/internal/server/config"
	"github.com/ivlasenko/bookvault/internal/server/users"
)

type Server struct {
	addr         string
	logger       logging.Logger
	users        *users.Service
	books        *books.Service
	protectBooks bool
	corsOrigins  []string
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service, bs *books.Service) *Server {
	origins := make([]string, 0)
	for _, o := range strings.Split(cfg.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Server{
		addr:         cfg.Addr,
		logger:       l.With("module", "http_server"),
		users:        us,
		books:        bs,
		protectBooks: cfg.ProtectBooks,
		corsOrigins:  origins,
	}
}

// Router builds the full route tree. Book routes get the bearer middleware
// only when ProtectBooks is enabled; by default the catalog is public while
// the token system still guards nothing but itself.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
		r.Put("/changepassword", s.handleChangePassword)
	})

	r.Route("/books", func(r chi.Router) {
		if s.protectBooks {
			r.Use(s.bearerAuth)
		}
		r.Post("/", s.handleCreateBook)
		r.Get("/", s.handleListBooks)
		r.Get("/{bookID}", s.handleGetBook)
		r.Put("/{bookID}", s.handleUpdateBook)
		r.Delete("/{bookID}", s.handleDeleteBook)
	})

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
