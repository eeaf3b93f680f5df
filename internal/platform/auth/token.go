package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrUnauthenticated is returned for every credential failure: missing,
// malformed, expired, or wrongly signed tokens are deliberately
// indistinguishable so callers have a single failure path.
var ErrUnauthenticated = errors.New("unauthenticated")

type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken creates a signed HS256 token whose subject is the user id.
func IssueToken(secret []byte, userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ResolveToken extracts the user id from a bearer credential. It is a pure
// function of the credential and never panics on malformed input; every
// failure mode collapses into ErrUnauthenticated.
func ResolveToken(secret []byte, tokenStr string) (uuid.UUID, error) {
	if tokenStr == "" {
		return uuid.Nil, ErrUnauthenticated
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return uuid.Nil, ErrUnauthenticated
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrUnauthenticated
	}
	return uid, nil
}
