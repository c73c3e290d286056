package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"sniffscope/cmd/tui/components"
	"sniffscope/cmd/tui/themes"
	"sniffscope/internal/pkg/capture"
	"sniffscope/internal/pkg/logger"
)

type page int

const (
	pageHome page = iota
	pageDevices
	pageSession
	pageDetail
)

// Model is the top-level program state: the current page, the capture
// controller, and the session's record buffer. The buffer is owned by the
// UI loop alone; the worker only ever touches the channel.
type Model struct {
	page     page
	returnTo page // where Esc on the device page goes back to
	width    int
	height   int
	theme    themes.Theme

	controller *capture.Controller
	lister     capture.DeviceLister

	device  string
	records []capture.Record

	home         components.HomeMenu
	deviceList   components.DeviceList
	packetList   components.PacketList
	filterDialog components.FilterDialog
	details      components.DetailsPanel
	hexView      components.HexView
	statusBar    components.StatusBar
	footer       components.Footer
}

// NewModel builds the program model around a capture controller. The
// device lister is injected separately so tests can enumerate synthetic
// devices.
func NewModel(controller *capture.Controller, lister capture.DeviceLister, device string) Model {
	theme := themes.GetTheme(viper.GetString("tui.theme"))

	m := Model{
		page:         pageHome,
		returnTo:     pageHome,
		width:        80,
		height:       24,
		theme:        theme,
		controller:   controller,
		lister:       lister,
		device:       device,
		home:         components.NewHomeMenu(),
		deviceList:   components.NewDeviceList(),
		packetList:   components.NewPacketList(),
		filterDialog: components.NewFilterDialog(),
		details:      components.NewDetailsPanel(),
		hexView:      components.NewHexView(),
		statusBar:    components.NewStatusBar(),
		footer:       components.NewFooter(),
	}
	m.home.SetTheme(theme)
	m.deviceList.SetTheme(theme)
	m.packetList.SetTheme(theme)
	m.filterDialog.SetTheme(theme)
	m.details.SetTheme(theme)
	m.hexView.SetTheme(theme)
	m.statusBar.SetTheme(theme)
	m.footer.SetTheme(theme)
	m.layout()
	return m
}

// Init starts the tick loop and the initial device enumeration.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), loadDevicesCmd(m.lister))
}

// Update routes messages to the page handlers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tickMsg:
		m = m.handleTick()
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case devicesLoadedMsg:
		if msg.err != nil {
			logger.Error("device enumeration failed", "error", msg.err)
			m.statusBar.SetMessage(fmt.Sprintf("Device lookup failed: %v", msg.err), components.StatusError)
			return m, nil
		}
		m.deviceList.SetDevices(msg.devices)
		return m, nil

	case deviceSelectedMsg:
		m.device = msg.name
		m.page = pageSession
		m.statusBar.SetMessage(fmt.Sprintf("Device set to %s", msg.name), components.StatusSuccess)
		return m, nil

	case applyFilterMsg:
		return m.handleApplyFilter(msg.filter)

	case packetSelectedMsg:
		return m.openDetail(msg.index)

	case statusMsg:
		m.statusBar.SetMessage(msg.text, msg.level)
		return m, nil
	}

	return m, nil
}

// handleTick drains the ingestion channel without blocking and keeps
// follow mode pinned to the tail.
func (m Model) handleTick() Model {
	ch := m.controller.Records()
	if ch == nil {
		return m
	}

	got := false
drain:
	for {
		select {
		case rec := <-ch:
			m.records = append(m.records, rec)
			got = true
		default:
			break drain
		}
	}

	if got {
		m.packetList.SetRecords(m.records)
	}
	if m.packetList.Following() && m.controller.Capturing() {
		m.packetList.FollowTail()
	}
	m.statusBar.SetCapture(m.controller.Capturing(), m.device, m.controller.CurrentFilter())
	m.statusBar.SetCounts(len(m.records), m.controller.Dropped())
	return m
}

// startCapture begins a new session: the record buffer resets and ids
// restart from 1.
func (m Model) startCapture() (Model, tea.Cmd) {
	result, err := m.controller.StartWithStored(m.device)
	if err != nil {
		logger.Error("capture start failed", "device", m.device, "error", err)
		m.statusBar.SetMessage(fmt.Sprintf("Start failed: %v", err), components.StatusError)
		return m, nil
	}

	m.records = nil
	m.packetList.Reset()

	if result.FilterRejected != nil {
		m.statusBar.SetMessage(
			fmt.Sprintf("Filter rejected, capturing unfiltered: %v", result.FilterRejected),
			components.StatusWarn)
	} else {
		m.statusBar.SetMessage("Capture started", components.StatusSuccess)
	}
	return m, nil
}

func (m Model) stopCapture() (Model, tea.Cmd) {
	m.controller.Stop()
	m.statusBar.SetMessage(
		fmt.Sprintf("Capture stopped, %d packets", len(m.records)),
		components.StatusInfo)
	return m, nil
}

// handleApplyFilter stores the filter for the next start. A running
// worker is stopped first; the user restarts explicitly.
func (m Model) handleApplyFilter(filter string) (Model, tea.Cmd) {
	wasCapturing := m.controller.Capturing()
	m.controller.ApplyFilter(filter)

	switch {
	case filter == "":
		m.statusBar.SetMessage("Filter cleared", components.StatusInfo)
	case wasCapturing:
		m.statusBar.SetMessage(
			fmt.Sprintf("Filter set to %q, capture stopped. Press s to restart.", filter),
			components.StatusInfo)
	default:
		m.statusBar.SetMessage(fmt.Sprintf("Filter set to %q", filter), components.StatusInfo)
	}
	return m, nil
}

// openDetail switches to the detail page for the given record index.
func (m Model) openDetail(index int) (Model, tea.Cmd) {
	if index < 0 || index >= len(m.records) {
		return m, nil
	}
	rec := m.records[index]
	m.details.SetRecord(rec)
	m.hexView.SetData(rec.Data)
	m.page = pageDetail
	return m, nil
}

// quit stops any running worker before the program exits.
func (m Model) quit() (Model, tea.Cmd) {
	m.controller.Stop()
	return m, tea.Quit
}

// layout distributes the window between the page components.
func (m *Model) layout() {
	// Session: packet list above a one-line status bar and footer.
	m.packetList.SetSize(m.width, m.height-2)
	m.statusBar.SetWidth(m.width)
	m.footer.SetWidth(m.width)

	m.home.SetSize(m.width, m.height-1)
	m.deviceList.SetSize(m.width, m.height-1)
	m.filterDialog.SetSize(m.width, m.height)

	// Detail: summary panel on top, hex dump below.
	detailHeight := 10
	m.details.SetSize(m.width, detailHeight)
	m.hexView.SetSize(m.width, m.height-detailHeight-1)
}
