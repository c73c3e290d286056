package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sniffscope/internal/pkg/capture"
)

func makeRecords(n int) []capture.Record {
	records := make([]capture.Record, n)
	for i := range records {
		records[i] = capture.Record{
			Seq:      uint64(i + 1),
			Offset:   time.Duration(i) * time.Millisecond,
			Protocol: "TCP",
			Length:   60,
		}
	}
	return records
}

func newTestList(n int) PacketList {
	list := NewPacketList()
	list.SetSize(80, 23) // 23 - 2 border - 1 header = 20 visible rows
	list.SetRecords(makeRecords(n))
	return list
}

func TestPacketListStartsUnselected(t *testing.T) {
	list := newTestList(5)
	assert.Equal(t, -1, list.Selected())
	_, ok := list.SelectedRecord()
	assert.False(t, ok)
}

func TestCursorDownSelectsFirstWhenUnselected(t *testing.T) {
	list := newTestList(5)
	list.CursorDown()
	assert.Equal(t, 0, list.Selected())
}

func TestCursorUpScrollsWhenUnselected(t *testing.T) {
	list := newTestList(50)
	list.Scroll(10)
	assert.Equal(t, 10, list.Offset())

	list.CursorUp()
	assert.Equal(t, -1, list.Selected(), "cursor up without selection must not select")
	assert.Equal(t, 9, list.Offset())
}

func TestCursorMovementClamps(t *testing.T) {
	list := newTestList(3)
	list.CursorDown()
	list.CursorUp()
	list.CursorUp()
	assert.Equal(t, 0, list.Selected())

	list.GotoBottom()
	list.CursorDown()
	list.CursorDown()
	assert.Equal(t, 2, list.Selected())
}

func TestGotoTopAndBottom(t *testing.T) {
	list := newTestList(50)
	list.GotoBottom()
	assert.Equal(t, 49, list.Selected())
	list.GotoTop()
	assert.Equal(t, 0, list.Selected())
	assert.Equal(t, 0, list.Offset())
}

func TestSelectionScrollsIntoView(t *testing.T) {
	list := newTestList(50)
	list.Select(49)
	// 20 visible rows: showing row 49 needs offset 30.
	assert.Equal(t, 30, list.Offset())

	list.Select(0)
	assert.Equal(t, 0, list.Offset())
}

func TestScrollWheelStepAndClamp(t *testing.T) {
	list := newTestList(50)
	list.ScrollWheel(false)
	assert.Equal(t, 3, list.Offset())

	list.ScrollWheel(true)
	list.ScrollWheel(true)
	assert.Equal(t, 0, list.Offset(), "offset clamps at zero")

	for i := 0; i < 100; i++ {
		list.ScrollWheel(false)
	}
	assert.Equal(t, 30, list.Offset(), "offset clamps so the last page stays full")
}

func TestClickSelectsThenActivates(t *testing.T) {
	list := newTestList(50)

	// Row 0 is the column header.
	index, activated := list.HandleClick(0)
	assert.Equal(t, -1, index)
	assert.False(t, activated)

	index, activated = list.HandleClick(3)
	assert.Equal(t, 2, index)
	assert.False(t, activated)
	assert.Equal(t, 2, list.Selected())

	index, activated = list.HandleClick(3)
	assert.Equal(t, 2, index)
	assert.True(t, activated, "second click on the selected row activates it")
}

func TestClickPastEndIgnored(t *testing.T) {
	list := newTestList(2)
	index, activated := list.HandleClick(10)
	assert.Equal(t, -1, index)
	assert.False(t, activated)
	assert.Equal(t, -1, list.Selected())
}

func TestClickAccountsForScrollOffset(t *testing.T) {
	list := newTestList(50)
	list.Scroll(10)
	index, _ := list.HandleClick(1)
	assert.Equal(t, 10, index)
}

func TestFollowTailPinsViewport(t *testing.T) {
	list := newTestList(50)
	list.SetFollow(true)
	assert.Equal(t, 30, list.Offset())

	// New records arrive; the tick re-pins the tail.
	list.SetRecords(makeRecords(60))
	list.FollowTail()
	assert.Equal(t, 40, list.Offset())

	// Disabling follow freezes the offset.
	list.SetFollow(false)
	list.SetRecords(makeRecords(70))
	assert.Equal(t, 40, list.Offset())
}

func TestSetRecordsDropsStaleSelection(t *testing.T) {
	list := newTestList(50)
	list.Select(49)
	list.SetRecords(makeRecords(10))
	assert.Equal(t, -1, list.Selected())
}

func TestViewRendersWithoutRecords(t *testing.T) {
	list := NewPacketList()
	list.SetSize(80, 23)
	out := list.View(true)
	assert.Contains(t, out, "No packets captured yet")
	assert.Contains(t, out, "Source")
}

func TestViewRendersRecords(t *testing.T) {
	list := newTestList(3)
	out := list.View(false)
	assert.Contains(t, out, "TCP")
}
