package app

import (
	"github.com/bookstore/storefront/internal/cart"
	"github.com/bookstore/storefront/internal/catalog"
)

// CartLineView is one rendered cart line
type CartLineView struct {
	Index     int
	ID        string
	Title     string
	UnitPrice int64
	Quantity  int
	LineTotal int64
}

// CartView is the cart screen's content
type CartView struct {
	Lines []CartLineView
	Total int64
	Count int
	Empty bool
}

// CheckoutSummary is the checkout screen's order summary
type CheckoutSummary struct {
	Lines      []CartLineView
	Total      int64
	PayEnabled bool
}

// BookDetails is the details screen's content. Found is false when the
// selected id is not in the catalog.
type BookDetails struct {
	ID    string
	Item  catalog.Item
	Found bool
}

// BuildCartView projects lines priced from c. Lines whose book is missing from
// the catalog are not shown.
func BuildCartView(c *catalog.Catalog, lines []cart.Line) CartView {
	v := CartView{Lines: make([]CartLineView, 0, len(lines))}
	for i, l := range lines {
		item, err := c.Find(l.ID)
		if err != nil {
			continue
		}
		lv := CartLineView{
			Index:     i,
			ID:        l.ID,
			Title:     item.Title,
			UnitPrice: item.Price,
			Quantity:  l.Quantity,
			LineTotal: item.Price * int64(l.Quantity),
		}
		v.Lines = append(v.Lines, lv)
		v.Total += lv.LineTotal
		v.Count += lv.Quantity
	}
	v.Empty = len(v.Lines) == 0
	return v
}

// BuildCheckoutSummary projects the checkout summary. Paying is only possible
// with a non-empty cart.
func BuildCheckoutSummary(c *catalog.Catalog, lines []cart.Line) CheckoutSummary {
	v := BuildCartView(c, lines)
	return CheckoutSummary{
		Lines:      v.Lines,
		Total:      v.Total,
		PayEnabled: !v.Empty,
	}
}

// Renderer receives projections when the app decides a view must be redrawn
type Renderer interface {
	RenderCart(CartView)
	RenderCheckout(CheckoutSummary)
	RenderBookDetails(BookDetails)
	RenderBadge(count int)
}

type nopRenderer struct{}

func (nopRenderer) RenderCart(CartView)            {}
func (nopRenderer) RenderCheckout(CheckoutSummary) {}
func (nopRenderer) RenderBookDetails(BookDetails)  {}
func (nopRenderer) RenderBadge(int)                {}
