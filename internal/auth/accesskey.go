// Package auth implements the access-key gate and session tokens.
//
// The service has no user accounts: the operator configures a bcrypt
// hash of a single shared access key, clients exchange the key for a
// short-lived JWT, and the middleware requires that token on API routes.
// With no hash configured the API runs open (local mode).
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidAccessKey = errors.New("invalid access key")
	ErrWeakAccessKey    = errors.New("access key must be at least 8 characters")
)

// HashAccessKey produces the bcrypt hash to configure as ACCESS_KEY_HASH.
func HashAccessKey(key string) (string, error) {
	if len(key) < 8 {
		return "", ErrWeakAccessKey
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyAccessKey compares a presented key against the configured hash.
func VerifyAccessKey(hash, key string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
		return ErrInvalidAccessKey
	}
	return nil
}
