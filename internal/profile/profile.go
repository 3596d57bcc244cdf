// Package profile persists the logged-in user's details.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bookstore/storefront/internal/storage"
	"github.com/bookstore/storefront/internal/validation"
)

// User is the onboarding profile, stored as JSON under storage.KeyUserInfo
type User struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// New validates and normalizes the login form
func New(name, phone string) (User, error) {
	if err := validation.Login(name, phone); err != nil {
		return User{}, err
	}
	return User{Name: strings.TrimSpace(name), Phone: strings.TrimSpace(phone)}, nil
}

// Load returns the stored profile and whether the user is logged in. A
// missing or corrupt profile is reported as logged out.
func Load(ctx context.Context, s storage.Store) (User, bool, error) {
	flag, err := s.Get(ctx, storage.KeyLoggedIn)
	if errors.Is(err, storage.ErrNotFound) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, fmt.Errorf("failed to load login state: %w", err)
	}
	if flag != "true" {
		return User{}, false, nil
	}

	raw, err := s.Get(ctx, storage.KeyUserInfo)
	if errors.Is(err, storage.ErrNotFound) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, fmt.Errorf("failed to load profile: %w", err)
	}

	// A corrupt or incomplete profile counts as logged out
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, false, nil
	}
	if validation.Login(u.Name, u.Phone) != nil {
		return User{}, false, nil
	}
	return u, true, nil
}

// Save stores u and marks the user as logged in
func Save(ctx context.Context, s storage.Store, u User) error {
	if err := storage.SetJSON(ctx, s, storage.KeyUserInfo, u); err != nil {
		return err
	}
	if err := s.Set(ctx, storage.KeyLoggedIn, "true"); err != nil {
		return fmt.Errorf("failed to save login state: %w", err)
	}
	return nil
}

// Clear logs the user out. The profile itself is kept so the login form can
// be prefilled.
func Clear(ctx context.Context, s storage.Store) error {
	if err := s.Delete(ctx, storage.KeyLoggedIn); err != nil {
		return fmt.Errorf("failed to clear login state: %w", err)
	}
	return nil
}

// Stored returns the last saved profile regardless of login state
func Stored(ctx context.Context, s storage.Store) (User, bool) {
	var u User
	if err := storage.GetJSON(ctx, s, storage.KeyUserInfo, &u); err != nil {
		return User{}, false
	}
	return u, true
}
