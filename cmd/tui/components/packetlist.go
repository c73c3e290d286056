package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sniffscope/cmd/tui/themes"
	"sniffscope/internal/pkg/capture"
)

const (
	// headerRows is the fixed column-header row at the top of the list.
	// It is never selectable.
	headerRows = 1

	// wheelStep is how many rows one scroll-wheel notch moves the list.
	wheelStep = 3
)

// PacketList displays captured records as a scrollable table with an
// optional selection. Selection and scroll offset are independent: the
// list can be scrolled away from the selected row, and follow mode pins
// the viewport to the newest records without touching the selection.
type PacketList struct {
	records  []capture.Record
	selected int // -1 when nothing is selected
	offset   int
	width    int
	height   int
	follow   bool
	theme    themes.Theme
}

// NewPacketList creates a new packet list component
func NewPacketList() PacketList {
	return PacketList{
		selected: -1,
		width:    80,
		height:   20,
		theme:    themes.Solarized(),
	}
}

// SetTheme updates the theme
func (p *PacketList) SetTheme(theme themes.Theme) {
	p.theme = theme
}

// SetSize sets the display size
func (p *PacketList) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.clampOffset()
}

// SetRecords replaces the displayed records. The selection is dropped if
// it no longer points at a valid index.
func (p *PacketList) SetRecords(records []capture.Record) {
	p.records = records
	if p.selected >= len(records) {
		p.selected = -1
	}
	p.clampOffset()
}

// Reset clears records, selection and scroll state.
func (p *PacketList) Reset() {
	p.records = nil
	p.selected = -1
	p.offset = 0
}

// visibleRows is the number of record rows the list can show: total height
// minus the border rows and the column header.
func (p *PacketList) visibleRows() int {
	rows := p.height - 2 - headerRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (p *PacketList) maxOffset() int {
	m := len(p.records) - p.visibleRows()
	if m < 0 {
		m = 0
	}
	return m
}

func (p *PacketList) clampOffset() {
	if p.offset > p.maxOffset() {
		p.offset = p.maxOffset()
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// scrollToSelection adjusts the offset so the selected row is visible.
func (p *PacketList) scrollToSelection() {
	if p.selected < 0 {
		return
	}
	if p.selected < p.offset {
		p.offset = p.selected
	}
	if p.selected >= p.offset+p.visibleRows() {
		p.offset = p.selected - p.visibleRows() + 1
	}
	p.clampOffset()
}

// Selected returns the selected record index, -1 when nothing is selected.
func (p *PacketList) Selected() int {
	return p.selected
}

// SelectedRecord returns the selected record, if any.
func (p *PacketList) SelectedRecord() (capture.Record, bool) {
	if p.selected < 0 || p.selected >= len(p.records) {
		return capture.Record{}, false
	}
	return p.records[p.selected], true
}

// Select sets the selection, clamped to the valid range, and scrolls it
// into view.
func (p *PacketList) Select(index int) {
	if len(p.records) == 0 {
		p.selected = -1
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(p.records) {
		index = len(p.records) - 1
	}
	p.selected = index
	p.scrollToSelection()
}

// ClearSelection drops the selection without moving the viewport.
func (p *PacketList) ClearSelection() {
	p.selected = -1
}

// CursorUp moves the selection up one row. With no selection it scrolls
// the viewport up instead.
func (p *PacketList) CursorUp() {
	if p.selected < 0 {
		p.Scroll(-1)
		return
	}
	p.Select(p.selected - 1)
}

// CursorDown moves the selection down one row. With no selection it
// selects the first record.
func (p *PacketList) CursorDown() {
	if len(p.records) == 0 {
		return
	}
	if p.selected < 0 {
		p.Select(0)
		return
	}
	p.Select(p.selected + 1)
}

// GotoTop selects the first record.
func (p *PacketList) GotoTop() {
	if len(p.records) == 0 {
		return
	}
	p.Select(0)
}

// GotoBottom selects the last record.
func (p *PacketList) GotoBottom() {
	if len(p.records) == 0 {
		return
	}
	p.Select(len(p.records) - 1)
}

// Scroll moves the viewport by delta rows without changing the selection.
func (p *PacketList) Scroll(delta int) {
	p.offset += delta
	p.clampOffset()
}

// ScrollWheel moves the viewport one wheel notch in the given direction.
func (p *PacketList) ScrollWheel(up bool) {
	if up {
		p.Scroll(-wheelStep)
	} else {
		p.Scroll(wheelStep)
	}
}

// HandleClick maps a click on a content row (0 = column header) to a
// record. The first click on a row selects it; clicking the already
// selected row activates it, reported via the second return value.
func (p *PacketList) HandleClick(row int) (int, bool) {
	if row < headerRows {
		return -1, false
	}
	index := p.offset + row - headerRows
	if index < 0 || index >= len(p.records) {
		return -1, false
	}
	if index == p.selected {
		return index, true
	}
	p.Select(index)
	return index, false
}

// SetFollow toggles follow mode. Enabling it snaps to the tail at once;
// disabling it freezes the offset where it is.
func (p *PacketList) SetFollow(follow bool) {
	p.follow = follow
	if follow {
		p.FollowTail()
	}
}

// Following reports whether follow mode is enabled.
func (p *PacketList) Following() bool {
	return p.follow
}

// FollowTail pins the viewport to the newest records. Called on each tick
// while follow mode is active and a capture is running, so manual scrolls
// don't stick during a live session.
func (p *PacketList) FollowTail() {
	p.offset = p.maxOffset()
}

// Offset returns the current scroll offset.
func (p *PacketList) Offset() int {
	return p.offset
}

// Len returns the number of displayed records.
func (p *PacketList) Len() int {
	return len(p.records)
}

// View renders the packet list
func (p *PacketList) View(focused bool) string {
	var sb strings.Builder
	sb.WriteString(p.renderHeader())

	rows := p.visibleRows()
	if len(p.records) == 0 {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render("No packets captured yet..."))
		for i := 1; i < rows; i++ {
			sb.WriteString("\n")
		}
	} else {
		end := p.offset + rows
		if end > len(p.records) {
			end = len(p.records)
		}
		for i := p.offset; i < end; i++ {
			sb.WriteString("\n")
			sb.WriteString(p.renderRow(i, i == p.selected))
		}
		for i := end - p.offset; i < rows; i++ {
			sb.WriteString("\n")
		}
	}

	borderColor := p.theme.BorderColor
	if focused {
		borderColor = p.theme.FocusedBorderColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(p.width - 2).
		Height(p.height - 2).
		Render(sb.String())
}

func (p *PacketList) columnWidths() (seqW, timeW, srcW, dstW, protoW, lenW int) {
	seqW, timeW, protoW, lenW = 6, 10, 8, 6
	remaining := p.width - 2 - seqW - timeW - protoW - lenW - 5
	srcW = remaining / 2
	dstW = remaining - srcW
	if srcW < 9 {
		srcW = 9
	}
	if dstW < 9 {
		dstW = 9
	}
	return
}

func (p *PacketList) renderHeader() string {
	seqW, timeW, srcW, dstW, protoW, lenW := p.columnWidths()
	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s %-*s",
		seqW, "No.",
		timeW, "Time",
		srcW, "Source",
		dstW, "Destination",
		protoW, "Protocol",
		lenW, "Length",
	)
	style := lipgloss.NewStyle().
		Background(p.theme.HeaderBg).
		Foreground(p.theme.HeaderFg).
		Bold(true)
	return style.Render(truncate(header, p.width-2))
}

func (p *PacketList) renderRow(index int, selected bool) string {
	rec := p.records[index]
	seqW, timeW, srcW, dstW, protoW, lenW := p.columnWidths()

	line := fmt.Sprintf("%-*d %-*s %-*s %-*s %-*s %-*d",
		seqW, rec.Seq,
		timeW, fmt.Sprintf("%.3fs", rec.Offset.Seconds()),
		srcW, truncate(capture.FormatEndpoint(rec.Src), srcW),
		dstW, truncate(capture.FormatEndpoint(rec.Dst), dstW),
		protoW, truncate(rec.Protocol, protoW),
		lenW, rec.Length,
	)
	line = truncate(line, p.width-2)

	if selected {
		return lipgloss.NewStyle().
			Background(p.theme.SelectionBg).
			Foreground(p.theme.SelectionFg).
			Render(line)
	}
	return lipgloss.NewStyle().
		Foreground(p.theme.ProtocolColor(rec.Protocol)).
		Render(line)
}

// truncate cuts a string down to the given display width, appending an
// ellipsis when it had to cut.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 3 {
		runes := []rune(s)
		if len(runes) > width {
			runes = runes[:width]
		}
		return string(runes)
	}
	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > width-3 {
			return b.String() + "..."
		}
		b.WriteRune(r)
	}
	return b.String()
}
