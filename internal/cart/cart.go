// Package cart implements the persisted shopping cart.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bookstore/storefront/internal/catalog"
	"github.com/bookstore/storefront/internal/storage"
	"go.uber.org/zap"
)

// Line is one cart entry. Quantity is always at least 1.
//
// Older clients stored the whole catalog record next to the quantity; those
// extra fields are ignored on decode.
type Line struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Store is the ordered cart, unique by book id, persisted under storage.KeyCart
// after every mutation. It is owned by a single UI loop and is not safe for
// concurrent use.
type Store struct {
	store   storage.Store
	catalog *catalog.Catalog
	lines   []Line
	log     *zap.Logger
}

// NewStore creates an empty cart; call Load to read persisted lines
func NewStore(s storage.Store, c *catalog.Catalog, log *zap.Logger) *Store {
	return &Store{
		store:   s,
		catalog: c,
		log:     log,
	}
}

// Load replaces the in-memory cart with the persisted one. A missing or
// corrupt value yields an empty cart. Lines with unknown ids, empty ids or
// non-positive quantities are dropped, and repeated ids are merged.
func (s *Store) Load(ctx context.Context) error {
	s.lines = nil

	raw, err := s.store.Get(ctx, storage.KeyCart)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load cart: %w", err)
	}

	var stored []Line
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.log.Warn("Discarding corrupt cart", zap.Int("bytes", len(raw)), zap.Error(err))
		return nil
	}

	index := make(map[string]int, len(stored))
	for _, l := range stored {
		if l.ID == "" || l.Quantity < 1 || !s.catalog.Has(l.ID) {
			s.log.Debug("Dropping invalid cart line", zap.String("id", l.ID), zap.Int("quantity", l.Quantity))
			continue
		}
		if i, ok := index[l.ID]; ok {
			s.lines[i].Quantity += l.Quantity
			continue
		}
		index[l.ID] = len(s.lines)
		s.lines = append(s.lines, l)
	}
	return nil
}

// Lines returns a copy of the cart in order
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of distinct lines
func (s *Store) Len() int { return len(s.lines) }

// Count returns the total quantity across all lines
func (s *Store) Count() int {
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// Total returns the sum of price × quantity over all lines
func (s *Store) Total() int64 {
	var total int64
	for _, l := range s.lines {
		item, err := s.catalog.Find(l.ID)
		if err != nil {
			continue
		}
		total += item.Price * int64(l.Quantity)
	}
	return total
}

// Add increments the line for id, appending it with quantity 1 when absent,
// and returns the resulting quantity.
func (s *Store) Add(ctx context.Context, id string) (int, error) {
	if !s.catalog.Has(id) {
		return 0, catalog.ErrItemNotFound
	}

	next := s.Lines()
	qty := 1
	found := false
	for i := range next {
		if next[i].ID == id {
			next[i].Quantity++
			qty = next[i].Quantity
			found = true
			break
		}
	}
	if !found {
		next = append(next, Line{ID: id, Quantity: 1})
	}

	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}
	return qty, nil
}

// Remove drops the whole line at index. An out of range index is ignored.
func (s *Store) Remove(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.lines) {
		return nil
	}

	next := make([]Line, 0, len(s.lines)-1)
	next = append(next, s.lines[:index]...)
	next = append(next, s.lines[index+1:]...)
	return s.commit(ctx, next)
}

// BuyNow replaces the entire cart with a single line {id, 1}. Whatever was in
// the cart before is discarded: "buy now" checks out exactly one book.
func (s *Store) BuyNow(ctx context.Context, id string) error {
	if !s.catalog.Has(id) {
		return catalog.ErrItemNotFound
	}
	return s.commit(ctx, []Line{{ID: id, Quantity: 1}})
}

// Clear empties the cart
func (s *Store) Clear(ctx context.Context) error {
	return s.commit(ctx, []Line{})
}

// commit persists next and only then makes it the current cart
func (s *Store) commit(ctx context.Context, next []Line) error {
	if err := storage.SetJSON(ctx, s.store, storage.KeyCart, next); err != nil {
		s.log.Error("Failed to save cart", zap.Int("lines", len(next)), zap.Error(err))
		return fmt.Errorf("failed to save cart: %w", err)
	}
	s.lines = next
	return nil
}
