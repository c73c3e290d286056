package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sniffscope/cmd/tui/components"
)

// homeMenuFirstRow is the screen row of the first home menu item: border,
// padding, title, blank, welcome, blank.
const homeMenuFirstRow = 6

// handleMouse routes wheel and click events. The filter dialog swallows
// mouse input while open.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.filterDialog.IsOpen() {
		return m, nil
	}

	switch m.page {
	case pageSession:
		return m.handleSessionMouse(msg)
	case pageDetail:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if msg.Action == tea.MouseActionPress {
				m.hexView.LineUp()
			}
		case tea.MouseButtonWheelDown:
			if msg.Action == tea.MouseActionPress {
				m.hexView.LineDown()
			}
		}
	case pageHome:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			entry, confirmed := m.home.HandleClick(msg.Y - homeMenuFirstRow)
			if confirmed {
				switch entry {
				case components.HomeDeviceSelection:
					return m.gotoDevices()
				case components.HomePacketSniffer:
					m.page = pageSession
				}
			}
		}
	}
	return m, nil
}

func (m Model) handleSessionMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress {
			m.packetList.ScrollWheel(true)
		}
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress {
			m.packetList.ScrollWheel(false)
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		// The list's top border is screen row 0, so content starts at 1.
		index, activated := m.packetList.HandleClick(msg.Y - 1)
		if activated {
			return m, func() tea.Msg { return packetSelectedMsg{index: index} }
		}
	}
	return m, nil
}
