package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sniffscope/cmd/tui/themes"
)

// HomeEntry identifies a home menu choice.
type HomeEntry int

const (
	HomeDeviceSelection HomeEntry = iota
	HomePacketSniffer
)

type homeItem struct {
	title string
	desc  string
}

var homeItems = []homeItem{
	{"Device Selection", "Select network interface for packet capture"},
	{"Packet Sniffer", "Capture and analyze network packets"},
}

// HomeMenu is the landing page module picker.
type HomeMenu struct {
	selected int
	width    int
	height   int
	theme    themes.Theme
}

// NewHomeMenu creates a new home menu
func NewHomeMenu() HomeMenu {
	return HomeMenu{
		width:  80,
		height: 20,
		theme:  themes.Solarized(),
	}
}

// SetTheme updates the theme
func (h *HomeMenu) SetTheme(theme themes.Theme) {
	h.theme = theme
}

// SetSize sets the display size
func (h *HomeMenu) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Selected returns the highlighted entry.
func (h *HomeMenu) Selected() HomeEntry {
	return HomeEntry(h.selected)
}

// CursorUp moves the selection up
func (h *HomeMenu) CursorUp() {
	if h.selected > 0 {
		h.selected--
	}
}

// CursorDown moves the selection down
func (h *HomeMenu) CursorDown() {
	if h.selected < len(homeItems)-1 {
		h.selected++
	}
}

// HandleClick maps a click on a menu row to an entry. The first click
// highlights, a second click on the highlighted row confirms.
func (h *HomeMenu) HandleClick(row int) (HomeEntry, bool) {
	if row < 0 || row >= len(homeItems) {
		return 0, false
	}
	if row == h.selected {
		return HomeEntry(row), true
	}
	h.selected = row
	return HomeEntry(row), false
}

// View renders the home menu
func (h *HomeMenu) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(h.theme.InfoColor)
	numStyle := lipgloss.NewStyle().Foreground(h.theme.DNSColor)
	nameStyle := lipgloss.NewStyle().Foreground(h.theme.TCPColor)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Network Packet Sniffer"))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().
		Foreground(h.theme.Foreground).
		Render("Welcome. Select a module to continue."))
	sb.WriteString("\n\n")

	for i, item := range homeItems {
		line := numStyle.Render(fmt.Sprintf("%-4d", i+1)) +
			nameStyle.Render(fmt.Sprintf("%-20s", item.title)) +
			descStyle.Render(item.desc)
		if i == h.selected {
			line = lipgloss.NewStyle().
				Background(h.theme.SelectionBg).
				Foreground(h.theme.SelectionFg).
				Render(fmt.Sprintf("%-4d%-20s%s", i+1, item.title, item.desc))
		}
		sb.WriteString(line)
		if i < len(homeItems)-1 {
			sb.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.theme.BorderColor).
		Padding(1, 2).
		Width(h.width - 4).
		Render(sb.String())
}
