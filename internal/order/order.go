// Package order describes a completed checkout.
package order

import (
	"time"

	"github.com/bookstore/storefront/internal/cart"
	"github.com/bookstore/storefront/internal/catalog"
	"github.com/google/uuid"
)

// Line is one purchased book with the price paid
type Line struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	LineTotal int64  `json:"line_total"`
}

// Order is the snapshot taken when a payment is accepted
type Order struct {
	OrderID  string    `json:"order_id"`
	Name     string    `json:"name,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Address  string    `json:"address"`
	Pincode  string    `json:"pincode"`
	Items    []Line    `json:"items"`
	Total    int64     `json:"total"`
	PlacedAt time.Time `json:"placed_at"`
}

// New snapshots lines priced from c. Lines for books missing from the
// catalog are skipped.
func New(c *catalog.Catalog, lines []cart.Line, name, phone, address, pincode string) Order {
	o := Order{
		OrderID:  uuid.New().String(),
		Name:     name,
		Phone:    phone,
		Address:  address,
		Pincode:  pincode,
		Items:    make([]Line, 0, len(lines)),
		PlacedAt: time.Now().UTC(),
	}
	for _, l := range lines {
		item, err := c.Find(l.ID)
		if err != nil {
			continue
		}
		lineTotal := item.Price * int64(l.Quantity)
		o.Items = append(o.Items, Line{
			ID:        l.ID,
			Title:     item.Title,
			Quantity:  l.Quantity,
			UnitPrice: item.Price,
			LineTotal: lineTotal,
		})
		o.Total += lineTotal
	}
	return o
}
