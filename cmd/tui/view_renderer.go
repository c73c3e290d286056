package tui

import (
	"strings"

	"sniffscope/cmd/tui/components"
)

// View renders the current page.
func (m Model) View() string {
	var sb strings.Builder

	switch m.page {
	case pageHome:
		m.footer.SetContext(components.FooterHome)
		sb.WriteString(m.home.View())
	case pageDevices:
		m.footer.SetContext(components.FooterDevices)
		sb.WriteString(m.deviceList.View())
	case pageSession:
		m.footer.SetContext(components.FooterSession)
		if m.filterDialog.IsOpen() {
			return m.filterDialog.View()
		}
		sb.WriteString(m.packetList.View(true))
		sb.WriteString("\n")
		sb.WriteString(m.statusBar.View())
	case pageDetail:
		m.footer.SetContext(components.FooterDetail)
		sb.WriteString(m.details.View(false))
		sb.WriteString("\n")
		sb.WriteString(m.hexView.View(true))
	}

	sb.WriteString("\n")
	sb.WriteString(m.footer.View())
	return sb.String()
}
