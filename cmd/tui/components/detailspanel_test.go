package components

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sniffscope/internal/pkg/capture"
)

func TestDetailsPanelSummary(t *testing.T) {
	p := NewDetailsPanel()
	p.SetSize(80, 12)
	p.SetRecord(capture.Record{
		Seq:      42,
		Offset:   1500 * time.Millisecond,
		Protocol: "TCP",
		Length:   74,
		Src:      capture.Endpoint{Addr: net.IP{10, 0, 0, 1}, Port: 443, HasPort: true},
		Dst:      capture.Endpoint{Addr: net.IP{10, 0, 0, 2}, Port: 55123, HasPort: true},
	})

	out := p.View(false)
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "1.500s")
	assert.Contains(t, out, "TCP")
	assert.Contains(t, out, "74 bytes")
	assert.Contains(t, out, "10.0.0.1:443")
	assert.Contains(t, out, "10.0.0.2:55123")
}

func TestDetailsPanelLinkLevelShowsMAC(t *testing.T) {
	p := NewDetailsPanel()
	p.SetSize(80, 12)
	mac := net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	p.SetRecord(capture.Record{
		Seq:      1,
		Protocol: "UNKNOWN",
		Src:      capture.Endpoint{Hardware: mac},
		Dst:      capture.Endpoint{},
	})

	out := p.View(false)
	assert.Contains(t, out, "Source MAC")
	assert.Contains(t, out, "aa:bb:cc:dd:ee:ff")
	assert.Contains(t, out, "N/A")
}

func TestDetailsPanelEmpty(t *testing.T) {
	p := NewDetailsPanel()
	p.SetSize(80, 12)
	out := p.View(false)
	assert.Contains(t, out, "No packet selected")

	p.SetRecord(capture.Record{Seq: 1})
	p.Clear()
	assert.Contains(t, p.View(false), "No packet selected")
}
