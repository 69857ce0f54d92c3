// Package auth checks operator tokens for privileged relay operations.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenAuthorizer accepts tokens matching a bcrypt hash.
type TokenAuthorizer struct {
	hash []byte
}

// NewTokenAuthorizer builds a TokenAuthorizer from a bcrypt hash as
// produced by HashToken.
func NewTokenAuthorizer(hash string) (*TokenAuthorizer, error) {
	if hash == "" {
		return nil, errors.New("admin token hash is required")
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("parse admin token hash: %w", err)
	}
	return &TokenAuthorizer{hash: []byte(hash)}, nil
}

// Authorize implements relay.Authorizer.
func (a *TokenAuthorizer) Authorize(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if token == "" {
		return ErrMissingToken
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(token)); err != nil {
		return ErrInvalidToken
	}
	return nil
}

// HashToken returns the bcrypt hash operators configure for token.
func HashToken(token string, cost int) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), cost)
	if err != nil {
		return "", fmt.Errorf("hash token: %w", err)
	}
	return string(hash), nil
}
