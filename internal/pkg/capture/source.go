package capture

import (
	"time"

	"github.com/google/gopacket/pcap"
	"github.com/spf13/viper"
)

const (
	// DefaultSnapLen captures full frames on common link types.
	DefaultSnapLen = 65535

	// DefaultReadTimeoutMs bounds each blocking read. Cancellation is only
	// observed between reads, so this is also the worst-case latency of
	// Controller.Stop.
	DefaultReadTimeoutMs = 1000
)

// Source is one open capture handle. ReadPacketData blocks for at most the
// configured read timeout and returns ErrReadTimeout when no frame arrived
// in time.
type Source interface {
	ReadPacketData() ([]byte, error)
	SetBPFFilter(filter string) error
	Close()
}

// Opener opens a Source on a named device. The controller takes one so
// tests can substitute synthetic sources.
type Opener func(device string) (Source, error)

// ReadTimeout returns the configured pcap read timeout
// (pcap_timeout_ms, default 1000ms).
func ReadTimeout() time.Duration {
	ms := viper.GetInt("pcap_timeout_ms")
	if ms <= 0 {
		ms = DefaultReadTimeoutMs
	}
	return time.Duration(ms) * time.Millisecond
}

type liveSource struct {
	handle *pcap.Handle
}

// OpenLive opens a live pcap handle. An inactive handle is used so snaplen,
// promiscuous mode and the read timeout are all set before activation.
func OpenLive(device string) (Source, error) {
	snaplen := viper.GetInt("pcap_snaplen")
	if snaplen <= 0 {
		snaplen = DefaultSnapLen
	}

	inactive, err := pcap.NewInactiveHandle(device)
	if err != nil {
		return nil, err
	}
	defer inactive.CleanUp()

	if err := inactive.SetSnapLen(snaplen); err != nil {
		return nil, err
	}
	if err := inactive.SetPromisc(viper.GetBool("promiscuous")); err != nil {
		return nil, err
	}
	if err := inactive.SetTimeout(ReadTimeout()); err != nil {
		return nil, err
	}

	handle, err := inactive.Activate()
	if err != nil {
		return nil, err
	}
	return &liveSource{handle: handle}, nil
}

func (s *liveSource) ReadPacketData() ([]byte, error) {
	data, _, err := s.handle.ReadPacketData()
	if err == pcap.NextErrorTimeoutExpired {
		return nil, ErrReadTimeout
	}
	return data, err
}

func (s *liveSource) SetBPFFilter(filter string) error {
	return s.handle.SetBPFFilter(filter)
}

func (s *liveSource) Close() {
	s.handle.Close()
}
