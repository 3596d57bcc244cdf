package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bookstore/storefront/internal/app"
	"github.com/bookstore/storefront/internal/events"
	"github.com/bookstore/storefront/internal/i18n"
	"github.com/bookstore/storefront/internal/metrics"
	"github.com/bookstore/storefront/internal/order"
	"github.com/bookstore/storefront/internal/screen"
	"github.com/bookstore/storefront/internal/storage"
	"github.com/bookstore/storefront/internal/validation"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	orders []order.Order
	err    error
}

func (f *fakeNotifier) OrderPlaced(_ context.Context, o order.Order) error {
	f.orders = append(f.orders, o)
	return f.err
}

func newModel(t *testing.T, n *fakeNotifier, m *metrics.Metrics) *Model {
	t.Helper()
	var notifier events.Notifier
	if n != nil {
		notifier = n
	}
	model, err := New(context.Background(), Options{
		Store:    storage.NewMemoryStore(),
		Notifier: notifier,
		Metrics:  m,
	})
	require.NoError(t, err)
	return model
}

func published(result string) string {
	return `
# HELP storefront_orders_published_total Order notifications by result.
# TYPE storefront_orders_published_total counter
storefront_orders_published_total{result="` + result + `"} 1
`
}

func press(m *Model, key tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: key})
	return cmd
}

func typeText(m *Model, s string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

func login(t *testing.T, m *Model) {
	t.Helper()
	typeText(m, "Anu")
	press(m, tea.KeyTab)
	typeText(m, "9876543210")
	press(m, tea.KeyEnter)
	require.Equal(t, screen.Home, m.App().Screen())
}

func TestStartsOnLogin(t *testing.T) {
	m := newModel(t, nil, nil)

	assert.Equal(t, screen.RouteIndex, m.App().Route())
	assert.Equal(t, screen.Login, m.App().Screen())
	assert.True(t, m.panels[screen.Login].visible)
	assert.Contains(t, m.View(), m.App().Messages().T(i18n.LoginTitle))
}

func TestLoginShowsFieldErrors(t *testing.T) {
	m := newModel(t, nil, nil)

	press(m, tea.KeyEnter)

	msgs := m.App().Messages()
	assert.Equal(t, screen.Login, m.App().Screen())
	assert.Equal(t, msgs.T(i18n.ErrNameRequired), m.fieldErrors[validation.FieldName])
	assert.Equal(t, msgs.T(i18n.ErrPhoneInvalid), m.fieldErrors[validation.FieldPhone])
	assert.Contains(t, m.View(), msgs.T(i18n.ErrPhoneInvalid))
}

func TestLoginOpensHome(t *testing.T) {
	m := newModel(t, nil, nil)
	login(t, m)

	user, ok := m.App().User()
	assert.True(t, ok)
	assert.Equal(t, "Anu", user.Name)
	assert.True(t, m.primaryBar.visible)
	assert.False(t, m.actionsBar.visible)
	assert.True(t, m.nav[0].active)
}

func TestNavigationKeys(t *testing.T) {
	m := newModel(t, nil, nil)
	login(t, m)

	typeText(m, "2")
	assert.Equal(t, screen.Cart, m.App().Screen())
	assert.True(t, m.cartView.Empty)

	typeText(m, "3")
	assert.Equal(t, screen.Profile, m.App().Screen())
	assert.Contains(t, m.View(), "9876543210")

	typeText(m, "1")
	assert.Equal(t, screen.Home, m.App().Screen())
}

func TestAddToCartLabelReverts(t *testing.T) {
	m := newModel(t, nil, nil)
	login(t, m)

	press(m, tea.KeyEnter)
	require.Equal(t, screen.BookDetails, m.App().Screen())
	assert.False(t, m.primaryBar.visible)
	assert.True(t, m.actionsBar.visible)

	cmd := typeText(m, "a")
	require.NotNil(t, cmd)
	assert.Equal(t, m.App().Messages().F(i18n.AddedToCart, 1), m.addLabel)
	assert.Equal(t, 1, m.badge)

	typeText(m, "a")
	assert.Equal(t, m.App().Messages().F(i18n.AddedToCart, 2), m.addLabel)
	assert.Equal(t, 2, m.badge)

	// a tick from the first press must not clear the second label
	m.Update(revertLabelMsg{seq: m.labelSeq - 1})
	assert.NotEmpty(t, m.addLabel)

	m.Update(revertLabelMsg{seq: m.labelSeq})
	assert.Empty(t, m.addLabel)
}

func TestRemoveFromCart(t *testing.T) {
	m := newModel(t, nil, nil)
	login(t, m)

	press(m, tea.KeyEnter)
	typeText(m, "a")
	press(m, tea.KeyEsc)
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)
	typeText(m, "a")
	press(m, tea.KeyEsc)

	typeText(m, "2")
	require.Len(t, m.cartView.Lines, 2)
	assert.Equal(t, int64(749), m.cartView.Total)

	press(m, tea.KeyDown)
	typeText(m, "d")
	require.Len(t, m.cartView.Lines, 1)
	assert.Equal(t, int64(299), m.cartView.Total)
	assert.Equal(t, 0, m.cartCursor)
}

func TestBuyNowAndPay(t *testing.T) {
	n := &fakeNotifier{}
	reg := metrics.New()
	m := newModel(t, n, reg)
	login(t, m)

	press(m, tea.KeyEnter)
	typeText(m, "b")
	require.Equal(t, screen.RouteCheckout, m.App().Route())
	require.Equal(t, screen.Checkout, m.App().Screen())
	assert.True(t, m.summary.PayEnabled)
	assert.Equal(t, int64(299), m.summary.Total)

	typeText(m, "Home")
	press(m, tea.KeyTab)
	typeText(m, "56001")
	cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, screen.Checkout, m.App().Screen())
	assert.Contains(t, m.fieldErrors, validation.FieldAddress)
	assert.Contains(t, m.fieldErrors, validation.FieldPincode)

	press(m, tea.KeyTab)
	typeText(m, " MG Road Kochi")
	press(m, tea.KeyTab)
	typeText(m, "1")
	cmd = press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, screen.ThankYou, m.App().Screen())
	assert.Empty(t, m.fieldErrors)
	assert.Empty(t, m.App().Cart())
	assert.False(t, m.summary.PayEnabled)

	msg := cmd()
	sent, ok := msg.(orderPublishedMsg)
	require.True(t, ok)
	assert.NoError(t, sent.err)
	require.Len(t, n.orders, 1)
	assert.Equal(t, "560011", n.orders[0].Pincode)
	assert.Equal(t, int64(299), n.orders[0].Total)

	m.Update(msg)
	assert.NoError(t, testutil.GatherAndCompare(reg.Registry(), strings.NewReader(published("ok")), "storefront_orders_published_total"))

	press(m, tea.KeyEnter)
	assert.Equal(t, screen.RouteHome, m.App().Route())
	assert.Equal(t, 0, m.badge)
}

func TestPublishFailureIsRecorded(t *testing.T) {
	n := &fakeNotifier{err: errors.New("broker down")}
	reg := metrics.New()
	m := newModel(t, n, reg)
	login(t, m)

	press(m, tea.KeyEnter)
	typeText(m, "b")
	typeText(m, "MG Road Kochi")
	press(m, tea.KeyTab)
	typeText(m, "560001")
	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)

	m.Update(cmd())
	assert.Equal(t, screen.ThankYou, m.App().Screen())
	assert.NoError(t, testutil.GatherAndCompare(reg.Registry(), strings.NewReader(published("error")), "storefront_orders_published_total"))
}

func TestCheckoutEscReturnsHome(t *testing.T) {
	m := newModel(t, nil, nil)
	login(t, m)

	press(m, tea.KeyEnter)
	typeText(m, "b")
	require.Equal(t, screen.RouteCheckout, m.App().Route())

	press(m, tea.KeyEsc)
	assert.Equal(t, screen.RouteHome, m.App().Route())
	assert.Equal(t, 1, m.badge)
}

func TestLogoutPrefillsLogin(t *testing.T) {
	m := newModel(t, nil, nil)
	login(t, m)

	typeText(m, "3")
	typeText(m, "o")
	assert.Equal(t, screen.RouteIndex, m.App().Route())
	assert.Equal(t, screen.Login, m.App().Screen())
	assert.Equal(t, "Anu", m.login[0].Value())
	assert.Equal(t, "9876543210", m.login[1].Value())
}

func TestPreferenceKeys(t *testing.T) {
	m := newModel(t, nil, nil)
	assert.Equal(t, i18n.Malayalam, m.App().Messages().Tag())

	press(m, tea.KeyCtrlL)
	assert.Equal(t, i18n.English, m.App().Messages().Tag())
	assert.Contains(t, m.View(), "Welcome to BooksByNIK")

	press(m, tea.KeyCtrlT)
	assert.True(t, m.App().Preferences().DarkMode)
	assert.Contains(t, m.View(), "Dark mode on")

	press(m, tea.KeyCtrlT)
	assert.False(t, m.App().Preferences().DarkMode)
	assert.Contains(t, m.View(), "Dark mode off")

	press(m, tea.KeyTab)
	assert.NotContains(t, m.View(), "Dark mode off")
}

func TestCtrlCQuits(t *testing.T) {
	m := newModel(t, nil, nil)

	cmd := press(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

var _ app.Renderer = (*Model)(nil)
