// Package tui is the terminal front end of the storefront, built on bubbletea.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/bookstore/storefront/internal/app"
	"github.com/bookstore/storefront/internal/catalog"
	"github.com/bookstore/storefront/internal/events"
	"github.com/bookstore/storefront/internal/i18n"
	"github.com/bookstore/storefront/internal/metrics"
	"github.com/bookstore/storefront/internal/order"
	"github.com/bookstore/storefront/internal/profile"
	"github.com/bookstore/storefront/internal/screen"
	"github.com/bookstore/storefront/internal/storage"
	"github.com/bookstore/storefront/internal/validation"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// addedLabelDuration is how long the "added to cart" label stays up
const addedLabelDuration = 1500 * time.Millisecond

const notifyTimeout = 10 * time.Second

// Options configures the terminal UI
type Options struct {
	Store           storage.Store
	Catalog         *catalog.Catalog
	Notifier        events.Notifier
	Metrics         *metrics.Metrics
	DefaultLanguage string
	Log             *zap.Logger
}

type revertLabelMsg struct{ seq int }

type orderPublishedMsg struct {
	orderID string
	err     error
}

// Model is the bubbletea model. It owns the App and implements app.Renderer.
type Model struct {
	ctx      context.Context
	app      *app.App
	store    storage.Store
	notifier events.Notifier
	metrics  *metrics.Metrics
	log      *zap.Logger

	panels     map[screen.ID]*element
	nav        []*navButton
	primaryBar *element
	actionsBar *element

	login    []textinput.Model
	checkout []textinput.Model
	focus    int

	cursor     int
	cartCursor int

	cartView app.CartView
	summary  app.CheckoutSummary
	details  app.BookDetails
	badge    int

	fieldErrors map[string]string
	flash       string
	notice      string
	addLabel    string
	labelSeq    int
	lastOrder   *order.Order
	width       int
}

// New builds the UI and loads the login route
func New(ctx context.Context, opts Options) (*Model, error) {
	if opts.Notifier == nil {
		opts.Notifier = events.Nop{}
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	m := &Model{
		ctx:         ctx,
		store:       opts.Store,
		notifier:    opts.Notifier,
		metrics:     opts.Metrics,
		log:         opts.Log,
		panels:      make(map[screen.ID]*element),
		primaryBar:  &element{},
		actionsBar:  &element{},
		fieldErrors: make(map[string]string),
	}

	reg := screen.NewRegistry()
	for _, id := range allScreens {
		p := &element{}
		m.panels[id] = p
		reg.Panel(id, p)
	}
	for _, id := range primaryNav {
		b := &navButton{target: id}
		m.nav = append(m.nav, b)
		reg.Nav(id, b)
	}
	reg.Bars(m.primaryBar, m.actionsBar)

	m.login = []textinput.Model{newInput(40, 0), newInput(10, 0)}
	m.checkout = []textinput.Model{newInput(120, 0), newInput(6, 0)}

	m.app = app.New(app.Options{
		Store:           opts.Store,
		Catalog:         opts.Catalog,
		Screens:         reg,
		Renderer:        m,
		Metrics:         opts.Metrics,
		DefaultLanguage: opts.DefaultLanguage,
		Log:             opts.Log,
	})
	if err := m.app.Navigate(ctx, screen.RouteIndex); err != nil {
		return nil, err
	}
	m.resetForms()
	return m, nil
}

func newInput(limit, width int) textinput.Model {
	in := textinput.New()
	in.CharLimit = limit
	if width > 0 {
		in.Width = width
	}
	in.Prompt = "› "
	return in
}

// App exposes the application state, mainly for tests
func (m *Model) App() *app.App { return m.app }

// RenderCart implements app.Renderer
func (m *Model) RenderCart(v app.CartView) {
	m.cartView = v
	if m.cartCursor >= len(v.Lines) {
		m.cartCursor = max(len(v.Lines)-1, 0)
	}
}

// RenderCheckout implements app.Renderer
func (m *Model) RenderCheckout(v app.CheckoutSummary) { m.summary = v }

// RenderBookDetails implements app.Renderer
func (m *Model) RenderBookDetails(v app.BookDetails) {
	m.details = v
	m.addLabel = ""
}

// RenderBadge implements app.Renderer
func (m *Model) RenderBadge(n int) { m.badge = n }

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case revertLabelMsg:
		if msg.seq == m.labelSeq {
			m.addLabel = ""
		}
		return m, nil

	case orderPublishedMsg:
		m.metrics.OrderPublished(msg.err == nil)
		if msg.err != nil {
			m.log.Error("Failed to publish order", zap.String("order_id", msg.orderID), zap.Error(msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateInputs(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		dark, err := m.app.ToggleDarkMode(m.ctx)
		if err != nil {
			m.fail(err)
			return m, nil
		}
		m.notice = m.app.Messages().T(i18n.DarkModeOff)
		if dark {
			m.notice = m.app.Messages().T(i18n.DarkModeOn)
		}
		return m, nil
	case "ctrl+l":
		if err := m.app.ToggleLanguage(m.ctx); err != nil {
			m.fail(err)
		}
		return m, nil
	}

	m.flash = ""
	m.notice = ""
	route := m.app.Route()
	var cmd tea.Cmd

	switch m.app.Screen() {
	case screen.Login:
		cmd = m.loginKey(msg)
	case screen.Home:
		cmd = m.homeKey(msg)
	case screen.BookDetails:
		cmd = m.detailsKey(msg)
	case screen.Cart:
		cmd = m.cartKey(msg)
	case screen.Profile:
		cmd = m.profileKey(msg)
	case screen.Checkout:
		cmd = m.checkoutKey(msg)
	case screen.ThankYou:
		cmd = m.thankYouKey(msg)
	}

	if m.app.Route() != route {
		m.resetForms()
	}
	return m, cmd
}

// navKey handles the primary navigation shortcuts shared by home screens
func (m *Model) navKey(key string) (tea.Cmd, bool) {
	switch key {
	case "1":
		m.app.ShowScreen(screen.Home)
	case "2":
		m.app.ShowScreen(screen.Cart)
	case "3":
		m.app.ShowScreen(screen.Profile)
	case "q":
		return tea.Quit, true
	default:
		return nil, false
	}
	return nil, true
}

func (m *Model) loginKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return m.cycleFocus(m.login, 1)
	case "shift+tab", "up":
		return m.cycleFocus(m.login, -1)
	case "enter":
		err := m.app.Login(m.ctx, m.login[0].Value(), m.login[1].Value())
		if err != nil {
			m.fail(err)
		}
		return nil
	}
	return m.updateFocused(m.login, msg)
}

func (m *Model) homeKey(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.navKey(msg.String()); ok {
		return cmd
	}

	items := m.app.Catalog().Items()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "enter":
		if len(items) > 0 {
			m.app.ShowBookDetails(items[m.cursor].ID)
		}
	}
	return nil
}

func (m *Model) detailsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "a":
		qty, err := m.app.AddToCart(m.ctx)
		if err != nil {
			m.fail(err)
			return nil
		}
		m.labelSeq++
		seq := m.labelSeq
		m.addLabel = m.app.Messages().F(i18n.AddedToCart, qty)
		return tea.Tick(addedLabelDuration, func(time.Time) tea.Msg {
			return revertLabelMsg{seq: seq}
		})
	case "b":
		if err := m.app.BuyNow(m.ctx); err != nil {
			m.fail(err)
		}
	case "esc", "backspace":
		m.app.ShowScreen(screen.Home)
	case "q":
		return tea.Quit
	}
	return nil
}

func (m *Model) cartKey(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.navKey(msg.String()); ok {
		return cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case "down", "j":
		if m.cartCursor < len(m.cartView.Lines)-1 {
			m.cartCursor++
		}
	case "d", "-", "delete":
		if len(m.cartView.Lines) > 0 {
			if err := m.app.RemoveFromCart(m.ctx, m.cartView.Lines[m.cartCursor].Index); err != nil {
				m.fail(err)
			}
		}
	case "c", "enter":
		if !m.cartView.Empty {
			if err := m.app.Checkout(m.ctx); err != nil {
				m.fail(err)
			}
		}
	case "esc":
		m.app.ShowScreen(screen.Home)
	}
	return nil
}

func (m *Model) profileKey(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.navKey(msg.String()); ok {
		return cmd
	}

	switch msg.String() {
	case "o":
		if err := m.app.Logout(m.ctx); err != nil {
			m.fail(err)
		}
	case "esc":
		m.app.ShowScreen(screen.Home)
	}
	return nil
}

func (m *Model) checkoutKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return m.cycleFocus(m.checkout, 1)
	case "shift+tab", "up":
		return m.cycleFocus(m.checkout, -1)
	case "esc":
		if err := m.app.Navigate(m.ctx, screen.RouteHome); err != nil {
			m.fail(err)
		}
		return nil
	case "enter":
		if !m.summary.PayEnabled {
			return nil
		}
		return m.pay()
	}
	return m.updateFocused(m.checkout, msg)
}

func (m *Model) pay() tea.Cmd {
	o, err := m.app.ProcessPayment(m.ctx, m.checkout[0].Value(), m.checkout[1].Value())
	if err != nil {
		m.fail(err)
		return nil
	}
	m.fieldErrors = make(map[string]string)
	m.lastOrder = &o
	m.summary = m.app.CheckoutSummary()
	if len(o.Items) == 0 {
		return nil
	}

	notifier, ctx := m.notifier, m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(events.WithCorrelationID(ctx, o.OrderID), notifyTimeout)
		defer cancel()
		return orderPublishedMsg{orderID: o.OrderID, err: notifier.OrderPlaced(ctx, o)}
	}
}

func (m *Model) thankYouKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		if err := m.app.Navigate(m.ctx, screen.RouteHome); err != nil {
			m.fail(err)
		}
	case "q":
		return tea.Quit
	}
	return nil
}

// fail turns an action error into inline feedback
func (m *Model) fail(err error) {
	msgs := m.app.Messages()

	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		m.fieldErrors = make(map[string]string)
		for _, f := range verr.Fields {
			m.fieldErrors[f.Field] = msgs.T(reasonKeys[f.Reason])
		}
	case errors.Is(err, app.ErrNoBookSelected):
		m.flash = msgs.T(i18n.SelectBook)
	case errors.Is(err, catalog.ErrItemNotFound):
		m.flash = msgs.F(i18n.DetailsNotFound, m.app.Selected())
	default:
		m.log.Error("Storefront action failed", zap.Error(err))
		m.flash = msgs.T(i18n.ErrSaveFailed)
	}
}

var reasonKeys = map[string]i18n.Key{
	validation.ReasonNameRequired:      i18n.ErrNameRequired,
	validation.ReasonPhoneInvalid:      i18n.ErrPhoneInvalid,
	validation.ReasonAddressIncomplete: i18n.ErrAddress,
	validation.ReasonPincodeInvalid:    i18n.ErrPincode,
}

// resetForms clears per-page UI state after a route change, the way a fresh
// page load would
func (m *Model) resetForms() {
	m.fieldErrors = make(map[string]string)
	m.focus = 0
	m.cursor = 0
	m.cartCursor = 0
	m.addLabel = ""
	for i := range m.login {
		m.login[i].Reset()
		m.login[i].Blur()
	}
	for i := range m.checkout {
		m.checkout[i].Reset()
		m.checkout[i].Blur()
	}
	switch m.app.Route() {
	case screen.RouteIndex:
		if u, ok := profile.Stored(m.ctx, m.store); ok {
			m.login[0].SetValue(u.Name)
			m.login[1].SetValue(u.Phone)
		}
		m.login[0].Focus()
	case screen.RouteCheckout:
		m.checkout[0].Focus()
		m.lastOrder = nil
	}
}

func (m *Model) cycleFocus(inputs []textinput.Model, delta int) tea.Cmd {
	inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(inputs)) % len(inputs)
	return inputs[m.focus].Focus()
}

func (m *Model) updateFocused(inputs []textinput.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	return cmd
}

// updateInputs forwards non-key messages such as cursor blinks to the active form
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	switch m.app.Route() {
	case screen.RouteIndex:
		return m.updateFocused(m.login, msg)
	case screen.RouteCheckout:
		return m.updateFocused(m.checkout, msg)
	}
	return nil
}
