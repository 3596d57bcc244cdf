package order

import (
	"testing"

	"github.com/bookstore/storefront/internal/cart"
	"github.com/bookstore/storefront/internal/catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	lines := []cart.Line{
		{ID: "WOH001", Quantity: 1},
		{ID: "ADVE002", Quantity: 2},
		{ID: "GONE", Quantity: 3},
	}

	o := New(catalog.Default(), lines, "Anu", "9876543210", "MG Road Kochi", "682001")

	_, err := uuid.Parse(o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, int64(1199), o.Total)
	require.Len(t, o.Items, 2)
	assert.Equal(t, int64(900), o.Items[1].LineTotal)
	assert.Equal(t, int64(450), o.Items[1].UnitPrice)
	assert.False(t, o.PlacedAt.IsZero())
}
