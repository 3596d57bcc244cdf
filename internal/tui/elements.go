package tui

import "github.com/bookstore/storefront/internal/screen"

// element is a toggleable region of the terminal UI. The screen controller
// flips visibility; View only draws what is visible.
type element struct {
	visible bool
}

func (e *element) SetVisible(v bool) { e.visible = v }

// navButton is one entry of the primary navigation bar
type navButton struct {
	target screen.ID
	active bool
}

func (b *navButton) SetActive(a bool) { b.active = a }

var allScreens = []screen.ID{
	screen.Login,
	screen.Home,
	screen.Cart,
	screen.Profile,
	screen.BookDetails,
	screen.Checkout,
	screen.ThankYou,
}

var primaryNav = []screen.ID{screen.Home, screen.Cart, screen.Profile}
