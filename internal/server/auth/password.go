package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/ivlasenko/bookvault/internal/common"
)

// HashPassword produces a salted bcrypt digest of the plaintext password.
// The cost factor is fixed at bcrypt's default.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A mismatch returns (false, nil). A hash that bcrypt cannot parse returns
// common.ErrInvalidHash: that means the stored record is corrupted and the
// failure must not be presented as a plain wrong-password case.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, common.ErrInvalidHash
}
