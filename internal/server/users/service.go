package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ivlasenko/bookvault/internal/common"
	"github.com/ivlasenko/bookvault/internal/server/auth"
	"github.com/ivlasenko/bookvault/internal/server/config"
)

// Token bundles a bearer token with its type, mirroring the login response
// body {access_token, token_type}.
type Token struct {
	AccessToken string
	TokenType   string
}

const tokenTypeBearer = "bearer"

// Service implements the authentication flows: signup, login, and password
// change. It composes the credential repository with the hashing and token
// primitives from the auth package. The signing secret and TTL are fixed at
// construction and never re-read per request.
type Service struct {
	repo      Repository
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:      repo,
		jwtSecret: []byte(cfg.SecretKey),
		tokenTTL:  cfg.TokenTTL,
		now:       time.Now,
	}
}

// SignUp creates a credential record for username. An existing username
// fails with common.ErrUsernameTaken: the pre-check catches the common case,
// and the storage unique index backstops concurrent signups.
func (s *Service) SignUp(ctx context.Context, username, password string) (*User, error) {

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil, common.ErrUsernameTaken
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking username: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			return nil, common.ErrUsernameTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the password and issues a token for subject = username.
// An unknown user and a wrong password return the same
// common.ErrorUnauthorized so callers cannot enumerate usernames.
func (s *Service) Login(ctx context.Context, username, password string) (*Token, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		// stored hash is unreadable, not a credential problem
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	return s.issueToken(user.Username)
}

// ChangePassword verifies the old password, persists a hash of the new one,
// and issues a fresh token for the same subject. All verification failures
// collapse into common.ErrorUnauthorized externally.
func (s *Service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) (*Token, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	ok, err := auth.VerifyPassword(oldPassword, user.PasswordHash)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.repo.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return nil, common.ErrorInternal
	}

	return s.issueToken(user.Username)
}

// VerifySubject validates a bearer token and returns its subject.
func (s *Service) VerifySubject(token string) (string, error) {
	return auth.VerifyToken(token, s.now(), s.jwtSecret)
}

func (s *Service) issueToken(subject string) (*Token, error) {
	accessToken, err := auth.IssueToken(subject, s.now(), s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &Token{AccessToken: accessToken, TokenType: tokenTypeBearer}, nil
}
