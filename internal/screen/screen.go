// Package screen controls which panel of the storefront UI is visible.
//
// Every screen belongs to exactly one route. A Controller is built for one
// route and ignores screens of other routes; moving between routes is done by
// building a new controller, the way a page load would.
package screen

// ID identifies a screen
type ID int

const (
	None ID = iota
	Home
	Cart
	Profile
	BookDetails
	Checkout
	ThankYou
	Login
)

var names = map[ID]string{
	None:        "none",
	Home:        "home",
	Cart:        "cart",
	Profile:     "profile",
	BookDetails: "book-details",
	Checkout:    "checkout",
	ThankYou:    "thank-you",
	Login:       "login",
}

func (id ID) String() string {
	if n, ok := names[id]; ok {
		return n
	}
	return "unknown"
}

// Parse maps a screen name such as "book-details" to its ID
func Parse(name string) (ID, bool) {
	for id, n := range names {
		if n == name && id != None {
			return id, true
		}
	}
	return None, false
}

// IsPrimaryNav reports whether id has a button in the primary navigation bar
func (id ID) IsPrimaryNav() bool {
	return id == Home || id == Cart || id == Profile
}

// Route is one logical page of the storefront
type Route int

const (
	RouteIndex Route = iota
	RouteHome
	RouteCheckout
)

func (r Route) String() string {
	switch r {
	case RouteIndex:
		return "index"
	case RouteHome:
		return "home"
	case RouteCheckout:
		return "checkout"
	default:
		return "unknown"
	}
}

// Screens returns the screens hosted by r
func (r Route) Screens() []ID {
	switch r {
	case RouteIndex:
		return []ID{Login}
	case RouteHome:
		return []ID{Home, Cart, Profile, BookDetails}
	case RouteCheckout:
		return []ID{Checkout, ThankYou}
	default:
		return nil
	}
}

// Hosts reports whether id is one of r's screens
func (r Route) Hosts(id ID) bool {
	for _, s := range r.Screens() {
		if s == id {
			return true
		}
	}
	return false
}
