package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sniffscope/cmd/tui/themes"
	"sniffscope/internal/pkg/capture"
)

// DetailsPanel displays the summary fields of a single record.
type DetailsPanel struct {
	record    capture.Record
	hasRecord bool
	width     int
	height    int
	theme     themes.Theme
}

// NewDetailsPanel creates a new details panel
func NewDetailsPanel() DetailsPanel {
	return DetailsPanel{
		width:  40,
		height: 10,
		theme:  themes.Solarized(),
	}
}

// SetTheme updates the theme
func (d *DetailsPanel) SetTheme(theme themes.Theme) {
	d.theme = theme
}

// SetSize sets the display size
func (d *DetailsPanel) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetRecord sets the record to display.
func (d *DetailsPanel) SetRecord(rec capture.Record) {
	d.record = rec
	d.hasRecord = true
}

// Clear removes the displayed record.
func (d *DetailsPanel) Clear() {
	d.hasRecord = false
}

// View renders the details panel
func (d *DetailsPanel) View(focused bool) string {
	borderColor := d.theme.BorderColor
	if focused {
		borderColor = d.theme.FocusedBorderColor
	}
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(d.width - 4)

	if !d.hasRecord {
		return borderStyle.Render(lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render("No packet selected"))
	}

	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(d.theme.InfoColor)
	valueStyle := lipgloss.NewStyle().Foreground(d.theme.Foreground)
	protoStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(d.theme.ProtocolColor(d.record.Protocol))

	srcLabel, dstLabel := "Source", "Destination"
	if d.record.IsLinkLevel() {
		srcLabel, dstLabel = "Source MAC", "Destination MAC"
	}

	rows := []string{
		labelStyle.Render("No.         ") + valueStyle.Render(fmt.Sprintf("%d", d.record.Seq)),
		labelStyle.Render("Time        ") + valueStyle.Render(fmt.Sprintf("%.3fs", d.record.Offset.Seconds())),
		labelStyle.Render("Protocol    ") + protoStyle.Render(d.record.Protocol),
		labelStyle.Render("Length      ") + valueStyle.Render(fmt.Sprintf("%d bytes", d.record.Length)),
		labelStyle.Render(fmt.Sprintf("%-12s", srcLabel)) + valueStyle.Render(capture.FormatEndpoint(d.record.Src)),
		labelStyle.Render(fmt.Sprintf("%-12s", dstLabel)) + valueStyle.Render(capture.FormatEndpoint(d.record.Dst)),
	}

	return borderStyle.Render(strings.Join(rows, "\n"))
}
