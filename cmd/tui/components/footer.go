package components

import (
	"github.com/charmbracelet/lipgloss"

	"sniffscope/cmd/tui/themes"
)

// FooterContext selects which keybinding hints the footer shows.
type FooterContext int

const (
	FooterHome FooterContext = iota
	FooterDevices
	FooterSession
	FooterDetail
)

// Footer displays the bottom footer bar with keybindings
type Footer struct {
	width   int
	theme   themes.Theme
	context FooterContext
}

// NewFooter creates a new footer component
func NewFooter() Footer {
	return Footer{
		width: 80,
		theme: themes.Solarized(),
	}
}

// SetTheme updates the theme
func (f *Footer) SetTheme(theme themes.Theme) {
	f.theme = theme
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext selects the hint set for the current page.
func (f *Footer) SetContext(ctx FooterContext) {
	f.context = ctx
}

// View renders the footer
func (f *Footer) View() string {
	keyStyle := lipgloss.NewStyle().Foreground(f.theme.InfoColor).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(f.theme.Foreground)
	sep := lipgloss.NewStyle().Foreground(f.theme.BorderColor).Render("│")

	bind := func(key, desc string) string {
		return keyStyle.Render(key) + descStyle.Render(": "+desc)
	}

	var bindings []string
	switch f.context {
	case FooterHome:
		bindings = []string{
			bind("↑↓", "navigate"),
			bind("Enter", "select"),
			bind("d", "devices"),
			bind("s", "sniffer"),
			bind("q", "quit"),
		}
	case FooterDevices:
		bindings = []string{
			bind("↑↓", "navigate"),
			bind("Enter", "select"),
			bind("r", "refresh"),
			bind("Esc", "back"),
		}
	case FooterDetail:
		bindings = []string{
			bind("↑↓", "scroll"),
			bind("PgUp/PgDn", "page"),
			bind("Home/End", "jump"),
			bind("Esc", "back"),
		}
	default:
		bindings = []string{
			bind("s", "start/stop"),
			bind("a", "filter"),
			bind("f", "follow"),
			bind("c", "clear"),
			bind("Enter", "detail"),
			bind("d", "devices"),
			bind("Esc", "home"),
		}
	}

	var content string
	for i, b := range bindings {
		if i > 0 {
			content += "  " + sep + "  "
		}
		content += b
	}

	footer := lipgloss.NewStyle().Padding(0, 1).Render(content)
	if lipgloss.Width(footer) < f.width {
		footer += lipgloss.NewStyle().
			Width(f.width - lipgloss.Width(footer)).
			Render("")
	}
	return footer
}
