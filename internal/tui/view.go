package tui

import (
	"fmt"
	"strings"

	"github.com/bookstore/storefront/internal/i18n"
	"github.com/bookstore/storefront/internal/screen"
	"github.com/bookstore/storefront/internal/validation"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m *Model) View() string {
	st := NewStyles(m.app.Preferences().DarkMode)
	msgs := m.app.Messages()

	var sections []string
	for _, id := range allScreens {
		if m.panels[id].visible {
			sections = append(sections, st.Panel.Render(m.renderScreen(id, st, msgs)))
		}
	}

	if m.app.Route() == screen.RouteHome {
		if m.primaryBar.visible {
			sections = append(sections, m.renderNav(st, msgs))
		}
		if m.actionsBar.visible {
			sections = append(sections, m.renderActions(st, msgs))
		}
	}

	if m.flash != "" {
		sections = append(sections, st.Error.Render(m.flash))
	}
	if m.notice != "" {
		sections = append(sections, st.Muted.Render(m.notice))
	}
	sections = append(sections, st.Muted.Render(msgs.T(i18n.HelpKeys)))

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		out = lipgloss.NewStyle().MaxWidth(m.width).Render(out)
	}
	return out + "\n"
}

func (m *Model) renderScreen(id screen.ID, st Styles, msgs i18n.Messages) string {
	switch id {
	case screen.Login:
		return m.renderLogin(st, msgs)
	case screen.Home:
		return m.renderHome(st, msgs)
	case screen.BookDetails:
		return m.renderDetails(st, msgs)
	case screen.Cart:
		return m.renderCart(st, msgs)
	case screen.Profile:
		return m.renderProfile(st, msgs)
	case screen.Checkout:
		return m.renderCheckout(st, msgs)
	case screen.ThankYou:
		return m.renderThankYou(st, msgs)
	}
	return ""
}

func (m *Model) renderLogin(st Styles, msgs i18n.Messages) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(msgs.T(i18n.LoginTitle)) + "\n\n")
	m.renderField(&b, st, msgs.T(i18n.LoginName), m.login[0], validation.FieldName)
	m.renderField(&b, st, msgs.T(i18n.LoginPhone), m.login[1], validation.FieldPhone)
	b.WriteString(st.Selected.Render("[ " + msgs.T(i18n.LoginSubmit) + " ]"))
	return b.String()
}

func (m *Model) renderField(b *strings.Builder, st Styles, label string, in textinput.Model, field string) {
	b.WriteString(st.Text.Render(label) + "\n")
	b.WriteString(in.View() + "\n")
	if msg, ok := m.fieldErrors[field]; ok {
		b.WriteString(st.Error.Render(msg) + "\n")
	}
	b.WriteString("\n")
}

func (m *Model) renderHome(st Styles, msgs i18n.Messages) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(msgs.T(i18n.HomeTitle)) + "\n\n")
	for i, item := range m.app.Catalog().Items() {
		line := fmt.Sprintf("%s  %s", item.Title, st.Price.Render(i18n.Money(item.Price)))
		if i == m.cursor {
			b.WriteString(st.Selected.Render("▸ ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("    " + st.Muted.Render(item.Author+" · "+item.Category) + "\n")
	}
	return b.String()
}

func (m *Model) renderDetails(st Styles, msgs i18n.Messages) string {
	if !m.details.Found {
		return st.Error.Render(msgs.F(i18n.DetailsNotFound, m.details.ID))
	}

	item := m.details.Item
	var b strings.Builder
	b.WriteString(st.Title.Render(item.Title) + "\n\n")
	b.WriteString(st.Text.Render(msgs.F(i18n.DetailsAuthor, item.Author)) + "\n")
	b.WriteString(st.Text.Render(msgs.F(i18n.DetailsCategory, item.Category)) + "\n")
	b.WriteString(st.Price.Render(msgs.F(i18n.DetailsPrice, i18n.Money(item.Price))) + "\n")
	if item.Description != "" {
		b.WriteString("\n" + st.Muted.Render(item.Description) + "\n")
	}
	return b.String()
}

func (m *Model) renderCart(st Styles, msgs i18n.Messages) string {
	if m.cartView.Empty {
		return st.Muted.Render(msgs.T(i18n.CartEmpty))
	}

	var b strings.Builder
	for i, l := range m.cartView.Lines {
		prefix := "  "
		if i == m.cartCursor {
			prefix = st.Selected.Render("▸ ")
		}
		b.WriteString(prefix + st.Text.Render(l.Title) + "\n")
		b.WriteString("    " + st.Muted.Render(msgs.F(i18n.CartLinePrice, i18n.Money(l.UnitPrice), l.Quantity)))
		b.WriteString("  " + st.Price.Render(msgs.F(i18n.CartLineTotal, i18n.Money(l.LineTotal))) + "\n")
	}
	b.WriteString("\n" + st.Title.Render(msgs.F(i18n.CartTotal, i18n.Money(m.cartView.Total))) + "\n")
	b.WriteString(st.Selected.Render("[ " + msgs.T(i18n.CartCheckout) + " ]"))
	return b.String()
}

func (m *Model) renderProfile(st Styles, msgs i18n.Messages) string {
	user, _ := m.app.User()
	var b strings.Builder
	b.WriteString(st.Text.Render(msgs.F(i18n.ProfileName, user.Name)) + "\n")
	b.WriteString(st.Text.Render(msgs.F(i18n.ProfilePhone, user.Phone)) + "\n\n")
	b.WriteString(st.Selected.Render("[ " + msgs.T(i18n.ProfileLogout) + " ]"))
	return b.String()
}

func (m *Model) renderCheckout(st Styles, msgs i18n.Messages) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(msgs.T(i18n.CheckoutTitle)) + "\n\n")

	if !m.summary.PayEnabled {
		b.WriteString(st.Muted.Render(msgs.T(i18n.CheckoutEmpty)) + "\n\n")
	}
	for _, l := range m.summary.Lines {
		b.WriteString(fmt.Sprintf("%s × %d  %s\n", l.Title, l.Quantity, st.Price.Render(i18n.Money(l.LineTotal))))
	}
	b.WriteString("\n")

	m.renderField(&b, st, msgs.T(i18n.CheckoutAddress), m.checkout[0], validation.FieldAddress)
	m.renderField(&b, st, msgs.T(i18n.CheckoutPincode), m.checkout[1], validation.FieldPincode)

	pay := "[ " + msgs.F(i18n.CheckoutPay, i18n.Money(m.summary.Total)) + " ]"
	if m.summary.PayEnabled {
		b.WriteString(st.Selected.Render(pay))
	} else {
		b.WriteString(st.Disabled.Render(pay))
	}
	return b.String()
}

func (m *Model) renderThankYou(st Styles, msgs i18n.Messages) string {
	var b strings.Builder
	b.WriteString(st.Success.Render(msgs.T(i18n.ThankYouTitle)) + "\n\n")
	b.WriteString(st.Text.Render(msgs.T(i18n.ThankYouBody)))
	if m.lastOrder != nil {
		b.WriteString("\n" + st.Muted.Render(m.lastOrder.OrderID))
	}
	return b.String()
}

func (m *Model) renderNav(st Styles, msgs i18n.Messages) string {
	labels := map[screen.ID]i18n.Key{
		screen.Home:    i18n.NavHome,
		screen.Cart:    i18n.NavCart,
		screen.Profile: i18n.NavProfile,
	}

	items := make([]string, 0, len(m.nav))
	for i, b := range m.nav {
		label := fmt.Sprintf("%d %s", i+1, msgs.T(labels[b.target]))
		if b.target == screen.Cart && m.badge > 0 {
			label += " " + st.Badge.Render(fmt.Sprint(m.badge))
		}
		if b.active {
			items = append(items, st.NavActive.Render(label))
		} else {
			items = append(items, st.NavItem.Render(label))
		}
	}
	return st.Bar.Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

func (m *Model) renderActions(st Styles, msgs i18n.Messages) string {
	add := msgs.T(i18n.AddToCart)
	if m.addLabel != "" {
		add = st.Success.Render(m.addLabel)
	}
	items := []string{
		st.NavItem.Render("a " + add),
		st.NavItem.Render("b " + msgs.T(i18n.BuyNow)),
	}
	return st.Bar.Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}
