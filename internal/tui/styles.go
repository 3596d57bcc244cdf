package tui

import "github.com/charmbracelet/lipgloss"

// Brand palette
var (
	LightForeground = lipgloss.Color("#1b2a41")
	LightPrimary    = lipgloss.Color("#7a3e9d")
	LightMuted      = lipgloss.Color("#8a8f98")
	LightBorder     = lipgloss.Color("#d6dae0")

	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#c792ea")
	DarkMuted      = lipgloss.Color("#6b7280")
	DarkBorder     = lipgloss.Color("#2a3850")

	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
)

// Styles is the rendered look of one theme
type Styles struct {
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Price     lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Panel     lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	Bar       lipgloss.Style
	Badge     lipgloss.Style
	Disabled  lipgloss.Style
}

// NewStyles returns the light or dark style set
func NewStyles(dark bool) Styles {
	fg, primary, muted, border := LightForeground, LightPrimary, LightMuted, LightBorder
	if dark {
		fg, primary, muted, border = DarkForeground, DarkPrimary, DarkMuted, DarkBorder
	}

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		Text:      lipgloss.NewStyle().Foreground(fg),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Price:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(primary),
		Error:     lipgloss.NewStyle().Foreground(Destructive),
		Success:   lipgloss.NewStyle().Bold(true).Foreground(Success),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		NavItem:   lipgloss.NewStyle().Foreground(muted).Padding(0, 2),
		NavActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(primary).Padding(0, 2),
		Bar:       lipgloss.NewStyle().BorderTop(true).BorderStyle(lipgloss.NormalBorder()).BorderForeground(border),
		Badge:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(Destructive).Padding(0, 1),
		Disabled:  lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
	}
}
