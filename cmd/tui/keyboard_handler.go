package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sniffscope/cmd/tui/components"
)

// handleKey routes keys by page. The filter dialog has exclusive focus
// while open.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.filterDialog.IsOpen() {
		apply, filter := m.filterDialog.HandleKey(msg)
		if apply {
			return m, func() tea.Msg { return applyFilterMsg{filter: filter} }
		}
		return m, nil
	}

	switch m.page {
	case pageHome:
		return m.handleHomeKey(msg)
	case pageDevices:
		return m.handleDevicesKey(msg)
	case pageSession:
		return m.handleSessionKey(msg)
	case pageDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m.quit()
	case "up", "k":
		m.home.CursorUp()
	case "down", "j":
		m.home.CursorDown()
	case "d":
		return m.gotoDevices()
	case "s":
		m.page = pageSession
	case "enter":
		switch m.home.Selected() {
		case components.HomeDeviceSelection:
			return m.gotoDevices()
		case components.HomePacketSniffer:
			m.page = pageSession
		}
	}
	return m, nil
}

func (m Model) gotoDevices() (tea.Model, tea.Cmd) {
	m.returnTo = m.page
	m.page = pageDevices
	return m, loadDevicesCmd(m.lister)
}

func (m Model) handleDevicesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.page = m.returnTo
	case "up", "k":
		m.deviceList.CursorUp()
	case "down", "j":
		m.deviceList.CursorDown()
	case "home":
		m.deviceList.GotoTop()
	case "end":
		m.deviceList.GotoBottom()
	case "r":
		return m, tea.Batch(
			statusCmd("Refreshing devices", components.StatusInfo),
			loadDevicesCmd(m.lister),
		)
	case "enter":
		if dev, ok := m.deviceList.Selected(); ok {
			return m, func() tea.Msg { return deviceSelectedMsg{name: dev.Name} }
		}
	}
	return m, nil
}

func (m Model) handleSessionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		// The worker keeps running; only quitting stops it.
		m.page = pageHome
	case "s":
		if m.controller.Capturing() {
			return m.stopCapture()
		}
		return m.startCapture()
	case "a":
		// Filter changes need a fresh capture open, so a running worker
		// stops before the dialog appears.
		if m.controller.Capturing() {
			m.controller.Stop()
		}
		m.filterDialog.Open()
	case "c":
		m.records = nil
		m.packetList.Reset()
		m.statusBar.SetMessage("Packets cleared", components.StatusInfo)
	case "f":
		m.packetList.SetFollow(!m.packetList.Following())
		if m.packetList.Following() {
			m.statusBar.SetMessage("Follow mode on", components.StatusInfo)
		} else {
			m.statusBar.SetMessage("Follow mode off", components.StatusInfo)
		}
	case "d":
		return m.gotoDevices()
	case "up", "k":
		m.packetList.CursorUp()
	case "down", "j":
		m.packetList.CursorDown()
	case "home":
		m.packetList.GotoTop()
	case "end":
		m.packetList.GotoBottom()
	case "enter":
		if index := m.packetList.Selected(); index >= 0 {
			return m, func() tea.Msg { return packetSelectedMsg{index: index} }
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.page = pageSession
	case "esc":
		m.page = pageHome
	case "up", "k":
		m.hexView.LineUp()
	case "down", "j":
		m.hexView.LineDown()
	case "pgup":
		m.hexView.PageUp()
	case "pgdown":
		m.hexView.PageDown()
	case "home":
		m.hexView.GotoTop()
	case "end":
		m.hexView.GotoEnd()
	}
	return m, nil
}
