package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sniffscope/cmd/tui/themes"
)

// StatusLevel controls the color of a status message.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusWarn
	StatusError
)

// StatusBar shows the capture state, active filter, packet counts and a
// transient message line.
type StatusBar struct {
	width     int
	theme     themes.Theme
	capturing bool
	device    string
	filter    string
	packets   int
	dropped   uint64
	message   string
	level     StatusLevel
}

// NewStatusBar creates a new status bar
func NewStatusBar() StatusBar {
	return StatusBar{
		width: 80,
		theme: themes.Solarized(),
	}
}

// SetTheme updates the theme
func (s *StatusBar) SetTheme(theme themes.Theme) {
	s.theme = theme
}

// SetWidth sets the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetCapture updates the capture state shown in the bar.
func (s *StatusBar) SetCapture(capturing bool, device, filter string) {
	s.capturing = capturing
	s.device = device
	s.filter = filter
}

// SetCounts updates the packet and drop counters.
func (s *StatusBar) SetCounts(packets int, dropped uint64) {
	s.packets = packets
	s.dropped = dropped
}

// SetMessage sets the transient message line.
func (s *StatusBar) SetMessage(msg string, level StatusLevel) {
	s.message = msg
	s.level = level
}

// ClearMessage removes the transient message.
func (s *StatusBar) ClearMessage() {
	s.message = ""
}

func (s *StatusBar) levelColor() lipgloss.Color {
	switch s.level {
	case StatusSuccess:
		return s.theme.SuccessColor
	case StatusWarn:
		return s.theme.WarningColor
	case StatusError:
		return s.theme.ErrorColor
	default:
		return s.theme.InfoColor
	}
}

// View renders the status bar
func (s *StatusBar) View() string {
	stateStyle := lipgloss.NewStyle().Bold(true)
	var state string
	if s.capturing {
		state = stateStyle.Foreground(s.theme.SuccessColor).Render("● CAPTURING")
	} else {
		state = stateStyle.Foreground(s.theme.ErrorColor).Render("■ STOPPED")
	}

	parts := []string{state}
	if s.device != "" {
		parts = append(parts, fmt.Sprintf("dev: %s", s.device))
	}
	if s.filter != "" {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(s.theme.FilterColor).
			Render(fmt.Sprintf("filter: %s", s.filter)))
	} else {
		parts = append(parts, "unfiltered")
	}
	parts = append(parts, fmt.Sprintf("packets: %d", s.packets))
	if s.dropped > 0 {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(s.theme.WarningColor).
			Render(fmt.Sprintf("dropped: %d", s.dropped)))
	}
	if s.message != "" {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(s.levelColor()).
			Render(s.message))
	}

	line := strings.Join(parts, "  ")
	return lipgloss.NewStyle().
		Background(s.theme.StatusBarBg).
		Foreground(s.theme.StatusBarFg).
		Padding(0, 1).
		Width(s.width).
		Render(truncate(line, s.width-2))
}
