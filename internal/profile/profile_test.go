package profile

import (
	"context"
	"testing"

	"github.com/bookstore/storefront/internal/storage"
	"github.com/bookstore/storefront/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizes(t *testing.T) {
	u, err := New("  Anu  ", " 9876543210")
	require.NoError(t, err)
	assert.Equal(t, User{Name: "Anu", Phone: "9876543210"}, u)

	_, err = New("", "123")
	var verr *validation.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()

	_, ok, err := Load(ctx, s)
	require.NoError(t, err)
	assert.False(t, ok)

	u := User{Name: "Anu", Phone: "9876543210"}
	require.NoError(t, Save(ctx, s, u))

	got, ok, err := Load(ctx, s)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, u, got)

	flag, err := s.Get(ctx, storage.KeyLoggedIn)
	require.NoError(t, err)
	assert.Equal(t, "true", flag)
}

func TestClearKeepsProfile(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()
	u := User{Name: "Anu", Phone: "9876543210"}
	require.NoError(t, Save(ctx, s, u))

	require.NoError(t, Clear(ctx, s))

	_, ok, err := Load(ctx, s)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, ok := Stored(ctx, s)
	assert.True(t, ok)
	assert.Equal(t, u, stored)
}

func TestLoadCorruptProfile(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()
	require.NoError(t, s.Set(ctx, storage.KeyLoggedIn, "true"))

	// Flag without a profile
	_, ok, err := Load(ctx, s)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, storage.KeyUserInfo, "{broken"))
	_, ok, err = Load(ctx, s)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, storage.KeyUserInfo, `{"name":"","phone":"1"}`))
	_, ok, err = Load(ctx, s)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoggedInFlagMustBeTrue(t *testing.T) {
	ctx := context.Background()
	s := storage.NewMemoryStore()
	require.NoError(t, Save(ctx, s, User{Name: "Anu", Phone: "9876543210"}))
	require.NoError(t, s.Set(ctx, storage.KeyLoggedIn, "yes"))

	_, ok, err := Load(ctx, s)
	require.NoError(t, err)
	assert.False(t, ok)
}
