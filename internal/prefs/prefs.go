// Package prefs persists display preferences: theme and language.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bookstore/storefront/internal/i18n"
	"github.com/bookstore/storefront/internal/storage"
	"golang.org/x/text/language"
)

// Preferences are the user's display settings
type Preferences struct {
	DarkMode bool
	Language string
}

// Load reads preferences, using defaultLanguage when none is stored.
// Unreadable values fall back to defaults.
func Load(ctx context.Context, s storage.Store, defaultLanguage string) (Preferences, error) {
	p := Preferences{Language: i18n.Match(defaultLanguage).String()}

	dark, err := s.Get(ctx, storage.KeyDarkMode)
	switch {
	case err == nil:
		if v, perr := strconv.ParseBool(dark); perr == nil {
			p.DarkMode = v
		}
	case !errors.Is(err, storage.ErrNotFound):
		return p, fmt.Errorf("failed to load dark mode: %w", err)
	}

	lang, err := s.Get(ctx, storage.KeyLanguage)
	switch {
	case err == nil:
		if _, perr := language.Parse(lang); perr == nil {
			p.Language = i18n.Match(lang).String()
		}
	case !errors.Is(err, storage.ErrNotFound):
		return p, fmt.Errorf("failed to load language: %w", err)
	}

	return p, nil
}

// SaveDarkMode stores the theme flag as "true" or "false"
func SaveDarkMode(ctx context.Context, s storage.Store, on bool) error {
	return s.Set(ctx, storage.KeyDarkMode, strconv.FormatBool(on))
}

// SaveLanguage stores the supported language closest to tag and returns it
func SaveLanguage(ctx context.Context, s storage.Store, tag string) (string, error) {
	lang := i18n.Match(tag).String()
	if err := s.Set(ctx, storage.KeyLanguage, lang); err != nil {
		return "", err
	}
	return lang, nil
}
