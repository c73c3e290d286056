package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexViewScrollBounds(t *testing.T) {
	h := NewHexView()
	h.SetSize(80, 12) // viewport height = 5
	h.SetData(make([]byte, 160)) // 10 rows

	assert.Equal(t, 0, h.Scroll())

	h.LineUp()
	assert.Equal(t, 0, h.Scroll(), "scroll clamps at zero")

	for i := 0; i < 20; i++ {
		h.LineDown()
	}
	assert.Equal(t, 5, h.Scroll(), "scroll clamps at lines - visible")

	h.GotoTop()
	assert.Equal(t, 0, h.Scroll())

	h.GotoEnd()
	assert.Equal(t, 5, h.Scroll())
}

func TestHexViewEndClampsWhenDataFits(t *testing.T) {
	h := NewHexView()
	h.SetSize(80, 20)
	h.SetData(make([]byte, 40)) // 3 rows, all visible

	h.GotoEnd()
	assert.Equal(t, 0, h.Scroll())
	h.PageDown()
	assert.Equal(t, 0, h.Scroll())
}

func TestHexViewPageScroll(t *testing.T) {
	h := NewHexView()
	h.SetSize(80, 12) // viewport height = 5
	h.SetData(make([]byte, 320)) // 20 rows

	h.PageDown()
	assert.Equal(t, 5, h.Scroll())
	h.PageDown()
	h.PageDown()
	h.PageDown()
	assert.Equal(t, 15, h.Scroll(), "max scroll is 20 - 5")

	h.PageUp()
	assert.Equal(t, 10, h.Scroll())
}

func TestHexViewSetDataResetsScroll(t *testing.T) {
	h := NewHexView()
	h.SetSize(80, 12)
	h.SetData(make([]byte, 320))
	h.GotoEnd()
	assert.NotEqual(t, 0, h.Scroll())

	h.SetData(make([]byte, 100))
	assert.Equal(t, 0, h.Scroll())
}

func TestHexViewRendersHexAndASCII(t *testing.T) {
	h := NewHexView()
	h.SetSize(80, 20)
	h.SetData([]byte("GET / HTTP/1.1\r\n"))

	out := h.View(false)
	assert.Contains(t, out, "47 45 54", "hex bytes for GET")
	assert.Contains(t, out, "GET / HTTP/1.1..", "non-printables render as dots")
	assert.Contains(t, out, "0000", "offset column")
	assert.Contains(t, out, "Hex Dump (16 bytes)")
}

func TestHexViewGroupsOfFour(t *testing.T) {
	h := NewHexView()
	h.SetSize(80, 20)
	h.SetData([]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00, 0x11})

	out := h.View(false)
	// An extra space separates each 4-byte group.
	assert.Contains(t, out, "aa bb cc dd  ee ff 00 11")
}

func TestHexViewEmptyData(t *testing.T) {
	h := NewHexView()
	h.SetSize(80, 20)
	h.SetData(nil)
	out := h.View(false)
	assert.Contains(t, out, "No packet data")
	assert.False(t, strings.Contains(out, "Hex Dump"))
}
