package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sniffscope/cmd/tui/components"
	"sniffscope/internal/pkg/capture"
)

// tickMsg drives the ingestion drain while the program runs.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// devicesLoadedMsg carries the result of a device enumeration.
type devicesLoadedMsg struct {
	devices []capture.Device
	err     error
}

func loadDevicesCmd(list capture.DeviceLister) tea.Cmd {
	return func() tea.Msg {
		devices, err := list()
		return devicesLoadedMsg{devices: devices, err: err}
	}
}

// deviceSelectedMsg is emitted when the user picks a capture device.
type deviceSelectedMsg struct {
	name string
}

// applyFilterMsg is emitted when the filter dialog confirms a filter.
type applyFilterMsg struct {
	filter string
}

// packetSelectedMsg requests the detail view for a record index.
type packetSelectedMsg struct {
	index int
}

// statusMsg sets the transient status line.
type statusMsg struct {
	text  string
	level components.StatusLevel
}

func statusCmd(text string, level components.StatusLevel) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, level: level}
	}
}
