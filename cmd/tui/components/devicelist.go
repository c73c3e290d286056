package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sniffscope/cmd/tui/themes"
	"sniffscope/internal/pkg/capture"
)

// DeviceList displays the available capture devices. An empty list is
// tolerated; unprivileged users commonly see none.
type DeviceList struct {
	devices  []capture.Device
	selected int
	width    int
	height   int
	theme    themes.Theme
}

// NewDeviceList creates a new device list component
func NewDeviceList() DeviceList {
	return DeviceList{
		width:  80,
		height: 20,
		theme:  themes.Solarized(),
	}
}

// SetTheme updates the theme
func (d *DeviceList) SetTheme(theme themes.Theme) {
	d.theme = theme
}

// SetSize sets the display size
func (d *DeviceList) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetDevices replaces the device list, clamping the selection.
func (d *DeviceList) SetDevices(devices []capture.Device) {
	d.devices = devices
	if d.selected >= len(devices) {
		d.selected = len(devices) - 1
	}
	if d.selected < 0 {
		d.selected = 0
	}
}

// Selected returns the selected device, if any.
func (d *DeviceList) Selected() (capture.Device, bool) {
	if len(d.devices) == 0 {
		return capture.Device{}, false
	}
	return d.devices[d.selected], true
}

// CursorUp moves the selection up
func (d *DeviceList) CursorUp() {
	if d.selected > 0 {
		d.selected--
	}
}

// CursorDown moves the selection down
func (d *DeviceList) CursorDown() {
	if d.selected < len(d.devices)-1 {
		d.selected++
	}
}

// GotoTop selects the first device
func (d *DeviceList) GotoTop() {
	d.selected = 0
}

// GotoBottom selects the last device
func (d *DeviceList) GotoBottom() {
	if len(d.devices) > 0 {
		d.selected = len(d.devices) - 1
	}
}

// View renders the device list
func (d *DeviceList) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(d.theme.InfoColor)
	headerStyle := lipgloss.NewStyle().
		Background(d.theme.HeaderBg).
		Foreground(d.theme.HeaderFg).
		Bold(true)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Select Capture Device"))
	sb.WriteString("\n\n")

	if len(d.devices) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(d.theme.WarningColor).
			Render("No capture devices found. Try running with elevated privileges."))
	} else {
		nameW := 16
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %s", nameW, "Device", "Description")))
		sb.WriteString("\n")
		for i, dev := range d.devices {
			desc := dev.Description
			if desc == "" {
				desc = "-"
			}
			line := fmt.Sprintf("%-*s %s", nameW, dev.Name, desc)
			line = truncate(line, d.width-6)
			if i == d.selected {
				line = lipgloss.NewStyle().
					Background(d.theme.SelectionBg).
					Foreground(d.theme.SelectionFg).
					Render(line)
			} else {
				line = lipgloss.NewStyle().Foreground(d.theme.Foreground).Render(line)
			}
			sb.WriteString(line)
			if i < len(d.devices)-1 {
				sb.WriteString("\n")
			}
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.theme.BorderColor).
		Padding(1, 2).
		Width(d.width - 4).
		Render(sb.String())
}
