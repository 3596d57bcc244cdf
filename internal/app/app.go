// Package app owns the storefront's state and wires the cart, profile,
// preferences and screen controller to user actions.
//
// An App is driven by a single UI loop. Each route change reloads every piece
// of state from storage, so nothing held in memory survives a navigation.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookstore/storefront/internal/cart"
	"github.com/bookstore/storefront/internal/catalog"
	"github.com/bookstore/storefront/internal/i18n"
	"github.com/bookstore/storefront/internal/metrics"
	"github.com/bookstore/storefront/internal/order"
	"github.com/bookstore/storefront/internal/prefs"
	"github.com/bookstore/storefront/internal/profile"
	"github.com/bookstore/storefront/internal/screen"
	"github.com/bookstore/storefront/internal/storage"
	"github.com/bookstore/storefront/internal/validation"
	"go.uber.org/zap"
)

var (
	// ErrNoBookSelected is returned by cart actions before any book was viewed
	ErrNoBookSelected = errors.New("no book selected")

	// ErrWrongRoute is returned when an action is not available on the current route
	ErrWrongRoute = errors.New("action not available on this page")
)

// Checkout results recorded in metrics
const (
	checkoutSuccess = "success"
	checkoutInvalid = "invalid"
)

// Options configures an App
type Options struct {
	Store           storage.Store
	Catalog         *catalog.Catalog
	Screens         *screen.Registry
	Renderer        Renderer
	Metrics         *metrics.Metrics
	DefaultLanguage string
	Log             *zap.Logger
}

// App is the storefront application state
type App struct {
	store           storage.Store
	catalog         *catalog.Catalog
	registry        *screen.Registry
	renderer        Renderer
	metrics         *metrics.Metrics
	defaultLanguage string
	log             *zap.Logger

	route    screen.Route
	screens  *screen.Controller
	cart     *cart.Store
	user     profile.User
	loggedIn bool
	prefs    prefs.Preferences
	selected string
}

// New creates an App. Call Navigate to load state and show the first screen.
func New(opts Options) *App {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Screens == nil {
		opts.Screens = screen.NewRegistry()
	}
	if opts.Renderer == nil {
		opts.Renderer = nopRenderer{}
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = "ml"
	}

	return &App{
		store:           opts.Store,
		catalog:         opts.Catalog,
		registry:        opts.Screens,
		renderer:        opts.Renderer,
		metrics:         opts.Metrics,
		defaultLanguage: opts.DefaultLanguage,
		log:             opts.Log,
		cart:            cart.NewStore(opts.Store, opts.Catalog, opts.Log),
	}
}

// Navigate loads route as a fresh page: state is re-read from storage and the
// route's initial screen is shown, possibly redirecting to another route.
func (a *App) Navigate(ctx context.Context, route screen.Route) error {
	a.log.Info("Navigating", zap.Stringer("route", route))

	a.route = route
	a.selected = ""
	a.screens = screen.NewController(route, a.registry, a.log)
	a.screens.OnEnter(screen.Cart, a.renderCart)
	a.screens.Observe(func(id screen.ID) {
		a.metrics.ScreenView(id.String())
	})

	if err := a.load(ctx); err != nil {
		return err
	}

	switch route {
	case screen.RouteIndex:
		if a.loggedIn {
			return a.Navigate(ctx, screen.RouteHome)
		}
		a.screens.Show(screen.Login)

	case screen.RouteHome:
		if !a.loggedIn {
			return a.Navigate(ctx, screen.RouteIndex)
		}
		a.screens.Show(screen.Home)
		a.renderer.RenderBadge(a.cart.Count())

	case screen.RouteCheckout:
		a.screens.Show(screen.Checkout)
		a.renderer.RenderCheckout(a.CheckoutSummary())

	default:
		return fmt.Errorf("unknown route %d", route)
	}
	return nil
}

func (a *App) load(ctx context.Context) error {
	if err := a.cart.Load(ctx); err != nil {
		return err
	}

	user, loggedIn, err := profile.Load(ctx, a.store)
	if err != nil {
		return err
	}
	a.user, a.loggedIn = user, loggedIn

	p, err := prefs.Load(ctx, a.store, a.defaultLanguage)
	if err != nil {
		return err
	}
	a.prefs = p
	return nil
}

// Login validates the onboarding form, stores the profile and opens the
// home route.
func (a *App) Login(ctx context.Context, name, phone string) error {
	user, err := profile.New(name, phone)
	if err != nil {
		return err
	}
	if err := profile.Save(ctx, a.store, user); err != nil {
		a.log.Error("Failed to save profile", zap.Error(err))
		return err
	}
	a.log.Info("User logged in", zap.String("name", user.Name))
	return a.Navigate(ctx, screen.RouteHome)
}

// Logout clears the login flag and returns to the login route
func (a *App) Logout(ctx context.Context) error {
	if err := profile.Clear(ctx, a.store); err != nil {
		return err
	}
	return a.Navigate(ctx, screen.RouteIndex)
}

// ShowScreen switches to id within the current route. It does nothing before
// the first Navigate.
func (a *App) ShowScreen(id screen.ID) {
	if a.screens == nil {
		return
	}
	a.screens.Show(id)
}

// ShowBookDetails selects id and opens the details screen. An unknown id
// still opens the screen, which then reports the book as not found.
func (a *App) ShowBookDetails(id string) {
	if a.route != screen.RouteHome {
		return
	}
	a.selected = id
	a.renderer.RenderBookDetails(a.BookDetails())
	a.screens.Show(screen.BookDetails)
}

// AddToCart adds the selected book and returns its new quantity
func (a *App) AddToCart(ctx context.Context) (int, error) {
	if a.route != screen.RouteHome {
		return 0, ErrWrongRoute
	}
	if a.selected == "" {
		return 0, ErrNoBookSelected
	}

	qty, err := a.cart.Add(ctx, a.selected)
	if err != nil {
		return 0, err
	}
	a.metrics.CartMutation("add")
	a.renderer.RenderBadge(a.cart.Count())
	return qty, nil
}

// RemoveFromCart removes the line at index; out of range indexes are ignored
func (a *App) RemoveFromCart(ctx context.Context, index int) error {
	before := a.cart.Len()
	if err := a.cart.Remove(ctx, index); err != nil {
		return err
	}
	if a.cart.Len() != before {
		a.metrics.CartMutation("remove")
	}
	a.renderer.RenderBadge(a.cart.Count())
	a.renderCart()
	return nil
}

// BuyNow replaces the whole cart with one copy of the selected book and opens
// the checkout route. Anything already in the cart is discarded.
func (a *App) BuyNow(ctx context.Context) error {
	if a.route != screen.RouteHome {
		return ErrWrongRoute
	}
	if a.selected == "" {
		return ErrNoBookSelected
	}

	if err := a.cart.BuyNow(ctx, a.selected); err != nil {
		return err
	}
	a.metrics.CartMutation("buy_now")
	return a.Navigate(ctx, screen.RouteCheckout)
}

// Checkout opens the checkout route with the current cart
func (a *App) Checkout(ctx context.Context) error {
	return a.Navigate(ctx, screen.RouteCheckout)
}

// ProcessPayment validates the delivery form. On success the cart is
// snapshotted into an Order, cleared, and the thank-you screen is shown; an
// empty cart yields an Order without items. On failure nothing changes and a
// *validation.ValidationError lists the rejected fields.
func (a *App) ProcessPayment(ctx context.Context, address, pincode string) (order.Order, error) {
	if a.route != screen.RouteCheckout {
		return order.Order{}, ErrWrongRoute
	}

	if err := validation.Checkout(address, pincode); err != nil {
		a.metrics.Checkout(checkoutInvalid)
		return order.Order{}, err
	}
	o := order.New(a.catalog, a.cart.Lines(), a.user.Name, a.user.Phone, address, pincode)
	if err := a.cart.Clear(ctx); err != nil {
		return order.Order{}, err
	}

	a.metrics.Checkout(checkoutSuccess)
	a.log.Info("Order placed",
		zap.String("order_id", o.OrderID),
		zap.Int64("total", o.Total),
		zap.Int("lines", len(o.Items)),
	)
	a.screens.Show(screen.ThankYou)
	return o, nil
}

// ToggleDarkMode flips and stores the theme, returning the new state
func (a *App) ToggleDarkMode(ctx context.Context) (bool, error) {
	next := !a.prefs.DarkMode
	if err := prefs.SaveDarkMode(ctx, a.store, next); err != nil {
		return a.prefs.DarkMode, err
	}
	a.prefs.DarkMode = next
	return next, nil
}

// SetLanguage stores the UI language
func (a *App) SetLanguage(ctx context.Context, tag string) error {
	lang, err := prefs.SaveLanguage(ctx, a.store, tag)
	if err != nil {
		return err
	}
	a.prefs.Language = lang
	return nil
}

// ToggleLanguage switches between Malayalam and English
func (a *App) ToggleLanguage(ctx context.Context) error {
	next := i18n.English.String()
	if i18n.Match(a.prefs.Language) == i18n.English {
		next = i18n.Malayalam.String()
	}
	return a.SetLanguage(ctx, next)
}

func (a *App) renderCart() {
	a.renderer.RenderCart(a.CartView())
}

// Route returns the current route
func (a *App) Route() screen.Route { return a.route }

// Screen returns the visible screen
func (a *App) Screen() screen.ID {
	if a.screens == nil {
		return screen.None
	}
	return a.screens.Current()
}

// User returns the logged-in profile
func (a *App) User() (profile.User, bool) { return a.user, a.loggedIn }

// Preferences returns the display settings
func (a *App) Preferences() prefs.Preferences { return a.prefs }

// Messages returns the UI strings for the current language
func (a *App) Messages() i18n.Messages { return i18n.For(a.prefs.Language) }

// Catalog returns the book list
func (a *App) Catalog() *catalog.Catalog { return a.catalog }

// Cart returns the current cart lines
func (a *App) Cart() []cart.Line { return a.cart.Lines() }

// Total returns the cart total
func (a *App) Total() int64 { return a.cart.Total() }

// Selected returns the id of the book last opened in the details screen
func (a *App) Selected() string { return a.selected }

// CartView projects the cart screen
func (a *App) CartView() CartView { return BuildCartView(a.catalog, a.cart.Lines()) }

// CheckoutSummary projects the checkout summary
func (a *App) CheckoutSummary() CheckoutSummary {
	return BuildCheckoutSummary(a.catalog, a.cart.Lines())
}

// BookDetails projects the selected book
func (a *App) BookDetails() BookDetails {
	item, err := a.catalog.Find(a.selected)
	return BookDetails{ID: a.selected, Item: item, Found: err == nil}
}
