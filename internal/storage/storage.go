// Package storage is the storefront's persistence boundary: a string-keyed
// key/value store holding JSON-encoded values, read fresh when a route loads
// and written synchronously after each mutation.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Persisted keys.
const (
	KeyCart     = "cart"
	KeyUserInfo = "userInfo"
	KeyLoggedIn = "isLoggedIn"
	KeyDarkMode = "darkMode"
	KeyLanguage = "language"
)

// ErrNotFound is returned when a key has no stored value
var ErrNotFound = errors.New("storage: key not found")

// Store is a string-keyed value store. Writes are last-writer-wins.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Backend is a Store with a connection lifecycle.
type Backend interface {
	Store
	Ping(ctx context.Context) error
	Close() error
}

// GetJSON decodes the value stored under key into v. It returns ErrNotFound
// when the key is absent and a wrapped decode error when the value is corrupt.
func GetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return s.Set(ctx, key, string(body))
}
