package capture

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource feeds a fixed set of frames, then times out forever, or
// fails with readErr once the frames are exhausted.
type fakeSource struct {
	mu        sync.Mutex
	frames    [][]byte
	readErr   error
	filters   []string
	filterErr error
	closed    bool
}

func (f *fakeSource) ReadPacketData() ([]byte, error) {
	f.mu.Lock()
	if len(f.frames) == 0 {
		err := f.readErr
		f.mu.Unlock()
		if err != nil {
			return nil, err
		}
		time.Sleep(time.Millisecond)
		return nil, ErrReadTimeout
	}
	frame := f.frames[0]
	f.frames = f.frames[1:]
	f.mu.Unlock()
	return frame, nil
}

func (f *fakeSource) SetBPFFilter(filter string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	return f.filterErr
}

func (f *fakeSource) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func fakeLister(names ...string) DeviceLister {
	return func() ([]Device, error) {
		devs := make([]Device, len(names))
		for i, n := range names {
			devs[i] = Device{Name: n}
		}
		return devs, nil
	}
}

func fakeOpener(src *fakeSource) Opener {
	return func(device string) (Source, error) {
		return src, nil
	}
}

func drain(t *testing.T, c *Controller, want int) []Record {
	t.Helper()
	var out []Record
	deadline := time.After(2 * time.Second)
	for len(out) < want {
		select {
		case rec := <-c.Records():
			out = append(out, rec)
		case <-deadline:
			t.Fatalf("drained %d records, want %d", len(out), want)
		}
	}
	return out
}

func TestStartAssignsSequentialIDs(t *testing.T) {
	src := &fakeSource{frames: [][]byte{{0x01}, {0x02}, {0x03}}}
	c := NewControllerWith(fakeOpener(src), fakeLister("eth0"))

	result, err := c.Start("eth0", "")
	require.NoError(t, err)
	assert.Nil(t, result.FilterRejected)
	assert.True(t, c.Capturing())

	records := drain(t, c, 3)
	c.Stop()

	for i, rec := range records {
		assert.Equal(t, uint64(i+1), rec.Seq)
	}
}

func TestStartDeviceNotFound(t *testing.T) {
	c := NewControllerWith(fakeOpener(&fakeSource{}), fakeLister("eth0", "lo"))

	_, err := c.Start("wlan0", "")
	var notFound *DeviceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "wlan0", notFound.Device)
	assert.False(t, c.Capturing())
}

func TestStartNoDevice(t *testing.T) {
	c := NewControllerWith(fakeOpener(&fakeSource{}), fakeLister("eth0"))

	_, err := c.Start("", "")
	assert.ErrorIs(t, err, ErrNoDevice)
}

func TestStartOpenError(t *testing.T) {
	opener := func(device string) (Source, error) {
		return nil, errors.New("permission denied")
	}
	c := NewControllerWith(opener, fakeLister("eth0"))

	_, err := c.Start("eth0", "")
	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.False(t, c.Capturing())
}

func TestStartWhileCapturing(t *testing.T) {
	src := &fakeSource{}
	c := NewControllerWith(fakeOpener(src), fakeLister("eth0"))

	_, err := c.Start("eth0", "")
	require.NoError(t, err)
	defer c.Stop()

	_, err = c.Start("eth0", "")
	assert.ErrorIs(t, err, ErrAlreadyCapturing)
}

func TestRestartAfterWorkerDeath(t *testing.T) {
	src := &fakeSource{readErr: errors.New("device went down")}
	c := NewControllerWith(fakeOpener(src), fakeLister("eth0"))

	_, err := c.Start("eth0", "")
	require.NoError(t, err)

	deadline := time.After(2 * time.Second)
	for c.Capturing() {
		select {
		case <-deadline:
			t.Fatal("worker did not exit on the fatal read error")
		case <-time.After(time.Millisecond):
		}
	}

	// The dead worker must not block a new session.
	_, err = c.Start("eth0", "")
	require.NoError(t, err)
	c.Stop()
}

func TestFilterRejectedIsNonFatal(t *testing.T) {
	src := &fakeSource{filterErr: errors.New("syntax error")}
	c := NewControllerWith(fakeOpener(src), fakeLister("eth0"))

	result, err := c.Start("eth0", "tcp port bogus")
	require.NoError(t, err)
	defer c.Stop()

	var filterErr *FilterError
	require.ErrorAs(t, result.FilterRejected, &filterErr)
	assert.True(t, c.Capturing())
}

func TestStartAppliesFilter(t *testing.T) {
	src := &fakeSource{}
	c := NewControllerWith(fakeOpener(src), fakeLister("eth0"))

	result, err := c.Start("eth0", "udp port 53")
	require.NoError(t, err)
	c.Stop()

	assert.Nil(t, result.FilterRejected)
	assert.Equal(t, []string{"udp port 53"}, src.filters)
	assert.Equal(t, "udp port 53", c.CurrentFilter())
}

func TestStopJoinsWorkerAndClosesSource(t *testing.T) {
	src := &fakeSource{}
	c := NewControllerWith(fakeOpener(src), fakeLister("eth0"))

	_, err := c.Start("eth0", "")
	require.NoError(t, err)

	c.Stop()
	assert.False(t, c.Capturing())

	src.mu.Lock()
	closed := src.closed
	src.mu.Unlock()
	assert.True(t, closed, "worker should close the source on exit")
}

func TestStopIsIdempotent(t *testing.T) {
	c := NewControllerWith(fakeOpener(&fakeSource{}), fakeLister("eth0"))

	c.Stop()

	_, err := c.Start("eth0", "")
	require.NoError(t, err)
	c.Stop()
	c.Stop()
	assert.False(t, c.Capturing())
}

func TestApplyFilterStopsAndStores(t *testing.T) {
	src := &fakeSource{}
	c := NewControllerWith(fakeOpener(src), fakeLister("eth0"))

	_, err := c.Start("eth0", "")
	require.NoError(t, err)

	c.ApplyFilter("tcp port 443")
	assert.False(t, c.Capturing(), "ApplyFilter must join the running worker")
	assert.Equal(t, "tcp port 443", c.CurrentFilter())

	// The stored filter is used on the next start.
	_, err = c.StartWithStored("eth0")
	require.NoError(t, err)
	c.Stop()
	assert.Equal(t, []string{"tcp port 443"}, src.filters)
}

func TestApplyFilterClears(t *testing.T) {
	c := NewControllerWith(fakeOpener(&fakeSource{}), fakeLister("eth0"))

	c.ApplyFilter("tcp")
	c.ApplyFilter("")
	assert.Equal(t, "", c.CurrentFilter())
}

func TestQueueOverflowDropsNewestKeepsIDsContiguous(t *testing.T) {
	// Queue of 2, 5 frames: the worker can enqueue at most 2 before the
	// consumer drains. Drops are counted and the ids that do arrive stay
	// contiguous from 1.
	viper.Set("capture.queue_size", 2)
	t.Cleanup(func() { viper.Set("capture.queue_size", 0) })

	src := &fakeSource{frames: [][]byte{{1}, {2}, {3}, {4}, {5}}}
	c := NewControllerWith(fakeOpener(src), fakeLister("eth0"))

	_, err := c.Start("eth0", "")
	require.NoError(t, err)

	// Wait until the worker has pushed against the full queue.
	deadline := time.After(2 * time.Second)
	for c.Dropped() == 0 {
		select {
		case <-deadline:
			t.Fatal("no drops recorded against a full queue")
		case <-time.After(time.Millisecond):
		}
	}
	c.Stop()

	var records []Record
	for {
		select {
		case rec := <-c.Records():
			records = append(records, rec)
			continue
		default:
		}
		break
	}

	require.NotEmpty(t, records)
	assert.Greater(t, c.Dropped(), uint64(0))
	for i, rec := range records {
		assert.Equal(t, uint64(i+1), rec.Seq, "ids must be gap-free despite drops")
	}
	assert.Equal(t, uint64(len(records))+c.Dropped(), uint64(5))
}
