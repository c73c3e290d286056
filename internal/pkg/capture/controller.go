package capture

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/spf13/viper"

	"sniffscope/internal/pkg/logger"
)

// DefaultQueueSize bounds the ingestion channel between the capture worker
// and the UI loop (capture.queue_size).
const DefaultQueueSize = 4096

// StartResult reports the outcome of a successful Start. FilterRejected is
// set when the BPF expression failed to compile; the session proceeds
// unfiltered and the caller surfaces the condition as a warning.
type StartResult struct {
	FilterRejected error
}

type captureHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Controller owns at most one capture worker and the channel it produces
// into. All methods are called from the UI loop; the worker communicates
// back only through the channel and the dropped counter.
type Controller struct {
	open   Opener
	list   DeviceLister
	handle *captureHandle

	records chan Record
	dropped atomic.Uint64

	device    string
	filter    string
	startTime time.Time
}

// NewController builds a controller over live pcap sources.
func NewController() *Controller {
	return NewControllerWith(OpenLive, ListDevices)
}

// NewControllerWith builds a controller with an injected source opener and
// device lister, used by tests.
func NewControllerWith(open Opener, list DeviceLister) *Controller {
	return &Controller{open: open, list: list}
}

func queueSize() int {
	n := viper.GetInt("capture.queue_size")
	if n <= 0 {
		n = DefaultQueueSize
	}
	return n
}

// Start opens the device, stores the filter, and spawns the capture worker.
//
// A rejected filter does not abort the session: the source stays open
// unfiltered and the rejection is reported in the StartResult. Device and
// open errors leave the controller idle.
func (c *Controller) Start(device, filter string) (StartResult, error) {
	c.filter = filter
	return c.start(device)
}

// StartWithStored starts capture on the device using the filter stored by
// the last Start or ApplyFilter call.
func (c *Controller) StartWithStored(device string) (StartResult, error) {
	return c.start(device)
}

func (c *Controller) start(device string) (StartResult, error) {
	if c.handle != nil {
		select {
		case <-c.handle.done:
			// The worker exited on its own, on a fatal read error. Join
			// it here so the session can be restarted.
			c.handle = nil
		default:
			return StartResult{}, ErrAlreadyCapturing
		}
	}
	if device == "" {
		return StartResult{}, ErrNoDevice
	}

	devs, err := c.list()
	if err != nil {
		return StartResult{}, err
	}
	found := false
	for _, d := range devs {
		if d.Name == device {
			found = true
			break
		}
	}
	if !found {
		return StartResult{}, &DeviceNotFoundError{Device: device}
	}

	src, err := c.open(device)
	if err != nil {
		return StartResult{}, &OpenError{Device: device, Err: err}
	}

	var result StartResult
	if c.filter != "" {
		if err := src.SetBPFFilter(c.filter); err != nil {
			result.FilterRejected = &FilterError{Filter: c.filter, Err: err}
			logger.Warn("filter rejected, capturing unfiltered",
				"device", device, "filter", c.filter, "error", err)
		}
	}

	// Fresh channel per session so stale records from a previous capture
	// never reach the new one.
	c.records = make(chan Record, queueSize())
	c.dropped.Store(0)
	c.device = device
	c.startTime = time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	handle := &captureHandle{cancel: cancel, done: make(chan struct{})}
	c.handle = handle

	go c.worker(ctx, src, c.records, handle.done)

	logger.Info("capture started", "device", device, "filter", c.filter)
	return result, nil
}

// worker reads frames until cancelled. Sequence ids are assigned only when
// a record is actually enqueued, so the consumer always sees ids 1..N with
// no gaps even when the queue overflows.
func (c *Controller) worker(ctx context.Context, src Source, out chan<- Record, done chan<- struct{}) {
	defer close(done)
	defer src.Close()

	start := c.startTime
	var seq uint64
	for {
		if ctx.Err() != nil {
			return
		}
		data, err := src.ReadPacketData()
		if err != nil {
			if errors.Is(err, ErrReadTimeout) {
				continue
			}
			logger.Error("capture read failed", "device", c.device, "error", err)
			return
		}
		rec := ParseRecord(seq+1, time.Since(start), data)
		select {
		case out <- rec:
			seq++
		default:
			// Queue full: drop the newest frame and count it.
			c.dropped.Add(1)
		}
	}
}

// Stop cancels the worker and blocks until it has exited, so no worker ever
// outlives a Stop call. Because cancellation is observed between timed
// reads, Stop may take up to the pcap read timeout to return. Calling Stop
// while idle is a no-op.
func (c *Controller) Stop() {
	if c.handle == nil {
		return
	}
	c.handle.cancel()
	<-c.handle.done
	c.handle = nil
	logger.Info("capture stopped", "device", c.device)
}

// ApplyFilter stops any running worker and stores the filter for the next
// Start. It never restarts capture itself; the caller decides when. An
// empty text clears the filter.
func (c *Controller) ApplyFilter(filter string) {
	c.Stop()
	c.filter = filter
}

// Records returns the channel the current session's worker produces into.
// Nil before the first Start. The UI drains it without blocking once per
// tick.
func (c *Controller) Records() <-chan Record {
	return c.records
}

// Dropped returns how many frames were discarded because the queue was full.
func (c *Controller) Dropped() uint64 {
	return c.dropped.Load()
}

// Capturing reports whether a worker is alive. A worker that exited on a
// fatal read error shows as not capturing even before Stop is called.
func (c *Controller) Capturing() bool {
	if c.handle == nil {
		return false
	}
	select {
	case <-c.handle.done:
		return false
	default:
		return true
	}
}

// CurrentFilter returns the stored filter text, empty when unfiltered.
func (c *Controller) CurrentFilter() string {
	return c.filter
}

// Device returns the device name of the current or most recent session.
func (c *Controller) Device() string {
	return c.device
}

// StartTime returns when the current or most recent session began.
func (c *Controller) StartTime() time.Time {
	return c.startTime
}
