package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sniffscope/cmd/tui/filters"
	"sniffscope/cmd/tui/themes"
)

type filterMode int

const (
	modeCustom filterMode = iota
	modePreset
)

// FilterDialog is a modal for choosing a capture filter, either by typing
// a BPF expression or by picking from the preset catalog. While open it
// has exclusive input focus.
type FilterDialog struct {
	open      bool
	mode      filterMode
	value     string
	cursor    int
	presetIdx int
	width     int
	height    int
	theme     themes.Theme
}

// NewFilterDialog creates a new filter dialog
func NewFilterDialog() FilterDialog {
	return FilterDialog{
		width:  80,
		height: 24,
		theme:  themes.Solarized(),
	}
}

// SetTheme updates the theme
func (f *FilterDialog) SetTheme(theme themes.Theme) {
	f.theme = theme
}

// SetSize sets the area the dialog centers itself in.
func (f *FilterDialog) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// Open shows the dialog in custom mode with an empty expression.
func (f *FilterDialog) Open() {
	f.open = true
	f.mode = modeCustom
	f.value = ""
	f.cursor = 0
	f.presetIdx = 0
}

// Close hides the dialog, discarding any edits.
func (f *FilterDialog) Close() {
	f.open = false
}

// IsOpen returns whether the dialog is visible.
func (f *FilterDialog) IsOpen() bool {
	return f.open
}

// Value returns the custom expression being edited.
func (f *FilterDialog) Value() string {
	return f.value
}

// HandleKey processes a key while the dialog is open. It returns true
// with the resolved filter text when the user confirmed; canceling or
// editing returns false.
func (f *FilterDialog) HandleKey(msg tea.KeyMsg) (bool, string) {
	switch msg.String() {
	case "esc":
		f.Close()
		return false, ""
	case "tab":
		if f.mode == modeCustom {
			f.mode = modePreset
		} else {
			f.mode = modeCustom
		}
		return false, ""
	case "enter":
		filter := f.value
		if f.mode == modePreset {
			filter = filters.Presets()[f.presetIdx].Filter
		}
		f.Close()
		return true, filter
	}

	if f.mode == modePreset {
		f.handlePresetKey(msg)
	} else {
		f.handleCustomKey(msg)
	}
	return false, ""
}

func (f *FilterDialog) handlePresetKey(msg tea.KeyMsg) {
	last := len(filters.Presets()) - 1
	switch msg.String() {
	case "up", "k":
		if f.presetIdx > 0 {
			f.presetIdx--
		}
	case "down", "j":
		if f.presetIdx < last {
			f.presetIdx++
		}
	case "home":
		f.presetIdx = 0
	case "end":
		f.presetIdx = last
	}
}

func (f *FilterDialog) handleCustomKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "backspace":
		if f.cursor > 0 {
			f.value = f.value[:f.cursor-1] + f.value[f.cursor:]
			f.cursor--
		}
	case "delete":
		if f.cursor < len(f.value) {
			f.value = f.value[:f.cursor] + f.value[f.cursor+1:]
		}
	case "left":
		if f.cursor > 0 {
			f.cursor--
		}
	case "right":
		if f.cursor < len(f.value) {
			f.cursor++
		}
	case "home":
		f.cursor = 0
	case "end":
		f.cursor = len(f.value)
	default:
		if msg.Type == tea.KeyRunes {
			f.value = f.value[:f.cursor] + string(msg.Runes) + f.value[f.cursor:]
			f.cursor += len(string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			f.value = f.value[:f.cursor] + " " + f.value[f.cursor:]
			f.cursor++
		}
	}
}

// View renders the dialog centered in its area.
func (f *FilterDialog) View() string {
	if !f.open {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(f.theme.FilterColor)
	activeTab := lipgloss.NewStyle().Bold(true).Foreground(f.theme.SelectionFg).Background(f.theme.SelectionBg).Padding(0, 1)
	inactiveTab := lipgloss.NewStyle().Foreground(f.theme.Foreground).Padding(0, 1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	customTab := inactiveTab.Render("Custom")
	presetTab := inactiveTab.Render("Presets")
	if f.mode == modeCustom {
		customTab = activeTab.Render("Custom")
	} else {
		presetTab = activeTab.Render("Presets")
	}

	var body string
	if f.mode == modeCustom {
		body = f.renderInput()
		body += "\n\n" + helpStyle.Render("Examples: tcp port 443, udp, host 10.0.0.1")
	} else {
		body = f.renderPresets()
	}

	content := titleStyle.Render("Capture Filter") + "\n\n" +
		customTab + " " + presetTab + "\n\n" +
		body + "\n\n" +
		helpStyle.Render("Enter: apply  Tab: switch mode  Esc: cancel")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(f.theme.FilterColor).
		Padding(1, 2).
		Width(min(60, f.width-4)).
		Render(content)

	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, box)
}

func (f *FilterDialog) renderInput() string {
	cursorStyle := lipgloss.NewStyle().
		Foreground(f.theme.SelectionFg).
		Background(f.theme.InfoColor)

	display := f.value
	if f.cursor < len(f.value) {
		display = f.value[:f.cursor] +
			cursorStyle.Render(string(f.value[f.cursor])) +
			f.value[f.cursor+1:]
	} else {
		display = f.value + cursorStyle.Render(" ")
	}

	prompt := lipgloss.NewStyle().Bold(true).Foreground(f.theme.InfoColor).Render(">")
	return prompt + " " + display
}

func (f *FilterDialog) renderPresets() string {
	var sb strings.Builder
	for i, preset := range filters.Presets() {
		line := fmt.Sprintf("%-16s %s", preset.Name, preset.Filter)
		if i == f.presetIdx {
			line = lipgloss.NewStyle().
				Background(f.theme.SelectionBg).
				Foreground(f.theme.SelectionFg).
				Render(line)
		} else {
			line = lipgloss.NewStyle().Foreground(f.theme.Foreground).Render(line)
		}
		sb.WriteString(line)
		if i < len(filters.Presets())-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
