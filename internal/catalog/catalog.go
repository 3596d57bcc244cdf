// Package catalog holds the storefront's static book list.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrItemNotFound is returned when no book has the requested id
	ErrItemNotFound = errors.New("book not found")

	// ErrDuplicateItem is returned when a catalog lists the same id twice
	ErrDuplicateItem = errors.New("duplicate book id")
)

// Item is an immutable catalog record. Price is in whole rupees.
type Item struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Price       int64  `yaml:"price" json:"price"`
	Author      string `yaml:"author" json:"author"`
	Category    string `yaml:"category" json:"category"`
	Lang        string `yaml:"lang" json:"lang"`
	Description string `yaml:"description" json:"description"`
}

// Catalog is an ordered, id-indexed list of items. It is never mutated after
// construction.
type Catalog struct {
	items []Item
	byID  map[string]int
}

// New builds a catalog, rejecting empty or duplicate ids and non-positive prices.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("book %q has no id", it.Title)
		}
		if it.Price <= 0 {
			return nil, fmt.Errorf("book %s: price must be positive", it.ID)
		}
		if _, ok := c.byID[it.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, it.ID)
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(defaultItems)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads a YAML catalog of the form `books: [{id: ..., ...}]`
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var doc struct {
		Books []Item `yaml:"books"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(doc.Books)
}

// Find returns the item with the given id
func (c *Catalog) Find(id string) (Item, error) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return c.items[i], nil
}

// Has reports whether id is in the catalog
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Items returns a copy of the catalog in display order
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of books
func (c *Catalog) Len() int { return len(c.items) }

var defaultItems = []Item{
	{
		ID:          "WOH001",
		Title:       "ഹൃദയത്തിന്റെ മന്ത്രണങ്ങൾ",
		Price:       299,
		Author:      "NIK",
		Category:    "Poetry",
		Lang:        "ml",
		Description: "ആത്മാവിൻ്റെ സ്പർശമുള്ള പ്രണയ കവിതകളുടെ സമാഹാരം.",
	},
	{
		ID:          "ADVE002",
		Title:       "സഹ്യാദ്രിയിലെ നിഴലുകൾ",
		Price:       450,
		Author:      "NIK",
		Category:    "Adventure",
		Lang:        "ml",
		Description: "സഹ്യപർവത നിരകളിലൂടെയുള്ള ഒരു സാഹസിക യാത്ര.",
	},
}
