package capture

import "github.com/google/gopacket/pcap"

// Device is one capture-capable network interface.
type Device struct {
	Name        string
	Description string
}

// DeviceLister enumerates capture devices. Injectable so tests can run
// without libpcap privileges.
type DeviceLister func() ([]Device, error)

// ListDevices enumerates the system's capture devices in pcap order. An
// empty result is not an error; unprivileged processes often see none.
func ListDevices() ([]Device, error) {
	devs, err := pcap.FindAllDevs()
	if err != nil {
		return nil, err
	}
	out := make([]Device, 0, len(devs))
	for _, d := range devs {
		out = append(out, Device{Name: d.Name, Description: d.Description})
	}
	return out, nil
}
