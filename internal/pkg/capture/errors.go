package capture

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDevice is returned by Start when no device name has been chosen.
	ErrNoDevice = errors.New("no capture device selected")

	// ErrAlreadyCapturing is returned by Start while a worker is alive.
	// A session never runs two workers at once.
	ErrAlreadyCapturing = errors.New("capture already running")

	// ErrReadTimeout is returned by Source.ReadPacketData when no frame
	// arrived within the read timeout. The worker re-checks cancellation
	// and retries.
	ErrReadTimeout = errors.New("packet read timed out")
)

// DeviceNotFoundError reports a device name that matched none of the
// enumerated capture devices.
type DeviceNotFoundError struct {
	Device string
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("device %q not found", e.Device)
}

// OpenError reports a failure to open a capture source (permissions,
// device busy, unsupported interface).
type OpenError struct {
	Device string
	Err    error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening device %q: %v", e.Device, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// FilterError reports a BPF expression that failed to compile. It is
// non-fatal: the session proceeds unfiltered and surfaces the error as a
// status warning.
type FilterError struct {
	Filter string
	Err    error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("filter %q rejected: %v", e.Filter, e.Err)
}

func (e *FilterError) Unwrap() error { return e.Err }
