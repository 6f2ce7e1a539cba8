// Package auth implements the credential primitives of the service: bearer
// token issuance/verification (HS256 JWT) and password hashing (bcrypt).
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ivlasenko/bookvault/internal/common"
)

// Claims is the token claim set. The username travels in the registered
// Subject claim; expiry in ExpiresAt. Extra claims pass through unchecked.
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken signs a claim set {sub: subject, exp: now + ttl} with the
// server secret and returns the encoded token.
func IssueToken(subject string, now time.Time, secretKey []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken checks the signature and expiry of tokenString against now and
// returns the subject. Signature and expiry are always verified together;
// failures surface as common.ErrTokenExpired or common.ErrInvalidToken.
func VerifyToken(tokenString string, now time.Time, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
