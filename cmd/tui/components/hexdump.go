package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"sniffscope/cmd/tui/themes"
)

// bytesPerLine is the width of one hex dump row.
const bytesPerLine = 16

// HexView displays a paginated hex/ASCII dump of packet data. The scroll
// position is tracked explicitly and clamped to the dump's line count; the
// embedded viewport only does the rendering.
type HexView struct {
	viewport viewport.Model
	data     []byte
	scroll   int
	width    int
	height   int
	theme    themes.Theme
	ready    bool
}

// NewHexView creates a new hex dump view
func NewHexView() HexView {
	return HexView{
		width:  40,
		height: 20,
		theme:  themes.Solarized(),
	}
}

// SetTheme updates the theme
func (h *HexView) SetTheme(theme themes.Theme) {
	h.theme = theme
}

// SetData sets the bytes to display and resets the scroll position.
func (h *HexView) SetData(data []byte) {
	h.data = data
	h.scroll = 0
	if h.ready {
		h.viewport.SetContent(h.renderContent())
		h.viewport.GotoTop()
	}
}

// SetSize sets the display size
func (h *HexView) SetSize(width, height int) {
	h.width = width
	h.height = height

	// Border (2), padding (2), title and spacing (3).
	viewportHeight := height - 7
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !h.ready {
		h.viewport = viewport.New(width-4, viewportHeight)
		h.ready = true
		if h.data != nil {
			h.viewport.SetContent(h.renderContent())
		}
	} else {
		h.viewport.Width = width - 4
		h.viewport.Height = viewportHeight
	}
	h.clampScroll()
}

// lineCount is the total number of dump rows.
func (h *HexView) lineCount() int {
	return (len(h.data) + bytesPerLine - 1) / bytesPerLine
}

// visibleLines is how many dump rows fit in the rendered area.
func (h *HexView) visibleLines() int {
	if !h.ready {
		return 1
	}
	return h.viewport.Height
}

// maxScroll bounds the scroll position: zero when the whole dump fits.
func (h *HexView) maxScroll() int {
	m := h.lineCount() - h.visibleLines()
	if m < 0 {
		m = 0
	}
	return m
}

func (h *HexView) clampScroll() {
	if h.scroll > h.maxScroll() {
		h.scroll = h.maxScroll()
	}
	if h.scroll < 0 {
		h.scroll = 0
	}
	if h.ready {
		h.viewport.SetYOffset(h.scroll)
	}
}

// LineUp scrolls up one row.
func (h *HexView) LineUp() {
	h.scroll--
	h.clampScroll()
}

// LineDown scrolls down one row.
func (h *HexView) LineDown() {
	h.scroll++
	h.clampScroll()
}

// PageUp scrolls up one page.
func (h *HexView) PageUp() {
	h.scroll -= h.visibleLines()
	h.clampScroll()
}

// PageDown scrolls down one page.
func (h *HexView) PageDown() {
	h.scroll += h.visibleLines()
	h.clampScroll()
}

// GotoTop scrolls to the first row.
func (h *HexView) GotoTop() {
	h.scroll = 0
	h.clampScroll()
}

// GotoEnd scrolls to the last page.
func (h *HexView) GotoEnd() {
	h.scroll = h.maxScroll()
	h.clampScroll()
}

// Scroll returns the current scroll position in rows.
func (h *HexView) Scroll() int {
	return h.scroll
}

// View renders the hex dump view
func (h *HexView) View(focused bool) string {
	if !h.ready {
		return ""
	}

	borderColor := h.theme.BorderColor
	if focused {
		borderColor = h.theme.InfoColor
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(h.width - 4)

	if len(h.data) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Align(lipgloss.Center)
		return borderStyle.Render(emptyStyle.Render("No packet data"))
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.theme.InfoColor)
	title := titleStyle.Render(fmt.Sprintf("Hex Dump (%d bytes)", len(h.data)))

	return borderStyle.Render(title + "\n\n" + h.viewport.View())
}

// renderContent generates the dump: offset column, hex bytes in groups of
// four, then the ASCII column with non-printables as dots.
func (h *HexView) renderContent() string {
	if len(h.data) == 0 {
		return ""
	}

	offsetStyle := lipgloss.NewStyle().Foreground(h.theme.HeaderFg).Bold(true)
	hexStyle := lipgloss.NewStyle().Foreground(h.theme.Foreground)
	asciiStyle := lipgloss.NewStyle().Foreground(h.theme.SuccessColor)

	var sb strings.Builder
	for offset := 0; offset < len(h.data); offset += bytesPerLine {
		sb.WriteString(offsetStyle.Render(fmt.Sprintf("%04x", offset)))
		sb.WriteString("  ")

		var hexPart, asciiPart strings.Builder
		for i := 0; i < bytesPerLine; i++ {
			if offset+i < len(h.data) {
				b := h.data[offset+i]
				fmt.Fprintf(&hexPart, "%02x ", b)
				if b >= 32 && b <= 126 {
					asciiPart.WriteByte(b)
				} else {
					asciiPart.WriteByte('.')
				}
			} else {
				hexPart.WriteString("   ")
				asciiPart.WriteByte(' ')
			}
			if i%4 == 3 && i != bytesPerLine-1 {
				hexPart.WriteByte(' ')
			}
		}

		sb.WriteString(hexStyle.Render(hexPart.String()))
		sb.WriteString(" ")
		sb.WriteString(asciiStyle.Render(asciiPart.String()))
		sb.WriteString("\n")
	}
	return sb.String()
}
