// Package utils provides helper functions for token creation and
// password hashing.
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the decoded payload of an access token: the
// subject user id and the admin flag the authorization gate checks.
type TokenClaims struct {
	UserID  string
	IsAdmin bool
}

// NewAccessToken builds and signs an HS256 JWT for a user. The
// claims carry the subject (user id), the admin flag, expiration
// and issued-at. The token is what clients send back in the
// x-auth-token header.
func NewAccessToken(secret, userID string, isAdmin bool, ttlMin int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":     userID,
		"isAdmin": isAdmin,
		"exp":     now.Add(time.Duration(ttlMin) * time.Minute).Unix(),
		"iat":     now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ErrInvalidToken is returned for tokens that fail signature or
// shape checks, including tokens signed with an unexpected method.
var ErrInvalidToken = errors.New("invalid token")

// ParseAccessToken verifies the signature and expiry of a token and
// returns its claims. Any failure collapses to ErrInvalidToken; the
// caller does not need to distinguish why a token was rejected.
func ParseAccessToken(secret, raw string) (TokenClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return TokenClaims{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return TokenClaims{}, ErrInvalidToken
	}
	isAdmin, _ := claims["isAdmin"].(bool)
	return TokenClaims{UserID: sub, IsAdmin: isAdmin}, nil
}
