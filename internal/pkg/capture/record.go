package capture

import (
	"fmt"
	"net"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// Endpoint is one side of a conversation. Addr and Port are filled for IP
// traffic; Hardware carries the MAC address for link-level traffic like ARP.
type Endpoint struct {
	Addr     net.IP
	Port     uint16
	HasPort  bool
	Hardware net.HardwareAddr
}

// Record is one captured frame, fully decoded at capture time so rendering
// never touches gopacket.
type Record struct {
	Seq      uint64
	Offset   time.Duration
	Src      Endpoint
	Dst      Endpoint
	Protocol string
	Length   int
	Data     []byte
}

// ParseRecord decodes a raw frame into a Record. It never fails: frames
// that decode to nothing are labeled UNKNOWN with empty endpoints, so the
// capture loop keeps every frame it read.
func ParseRecord(seq uint64, offset time.Duration, data []byte) Record {
	rec := Record{
		Seq:      seq,
		Offset:   offset,
		Protocol: "UNKNOWN",
		Length:   len(data),
		Data:     data,
	}

	pkt := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Lazy)

	if eth, ok := pkt.Layer(layers.LayerTypeEthernet).(*layers.Ethernet); ok {
		rec.Src.Hardware = eth.SrcMAC
		rec.Dst.Hardware = eth.DstMAC
	}

	switch {
	case pkt.Layer(layers.LayerTypeARP) != nil:
		arp := pkt.Layer(layers.LayerTypeARP).(*layers.ARP)
		rec.Protocol = "ARP"
		rec.Src.Addr = net.IP(arp.SourceProtAddress)
		rec.Dst.Addr = net.IP(arp.DstProtAddress)
		rec.Src.Hardware = net.HardwareAddr(arp.SourceHwAddress)
		rec.Dst.Hardware = net.HardwareAddr(arp.DstHwAddress)
		return rec
	case pkt.Layer(layers.LayerTypeIPv4) != nil:
		ip := pkt.Layer(layers.LayerTypeIPv4).(*layers.IPv4)
		rec.Protocol = ip.Protocol.String()
		rec.Src.Addr = ip.SrcIP
		rec.Dst.Addr = ip.DstIP
	case pkt.Layer(layers.LayerTypeIPv6) != nil:
		ip := pkt.Layer(layers.LayerTypeIPv6).(*layers.IPv6)
		rec.Protocol = ip.NextHeader.String()
		rec.Src.Addr = ip.SrcIP
		rec.Dst.Addr = ip.DstIP
	default:
		return rec
	}

	switch {
	case pkt.Layer(layers.LayerTypeTCP) != nil:
		tcp := pkt.Layer(layers.LayerTypeTCP).(*layers.TCP)
		rec.Protocol = "TCP"
		rec.Src.Port, rec.Src.HasPort = uint16(tcp.SrcPort), true
		rec.Dst.Port, rec.Dst.HasPort = uint16(tcp.DstPort), true
	case pkt.Layer(layers.LayerTypeUDP) != nil:
		udp := pkt.Layer(layers.LayerTypeUDP).(*layers.UDP)
		rec.Protocol = "UDP"
		rec.Src.Port, rec.Src.HasPort = uint16(udp.SrcPort), true
		rec.Dst.Port, rec.Dst.HasPort = uint16(udp.DstPort), true
	case pkt.Layer(layers.LayerTypeICMPv4) != nil:
		rec.Protocol = "ICMP"
	case pkt.Layer(layers.LayerTypeICMPv6) != nil:
		rec.Protocol = "ICMPv6"
	}

	return rec
}

// IsLinkLevel reports whether the record should be displayed by hardware
// address rather than IP endpoint.
func (r Record) IsLinkLevel() bool {
	return r.Src.Addr == nil && r.Src.Hardware != nil
}

// FormatEndpoint renders an endpoint for display. IPv6 addresses are
// bracketed when a port is present. Endpoints with no address fall back to
// the hardware address, then to "N/A".
func FormatEndpoint(e Endpoint) string {
	if e.Addr == nil {
		if e.Hardware != nil {
			return e.Hardware.String()
		}
		return "N/A"
	}
	if !e.HasPort {
		return e.Addr.String()
	}
	if e.Addr.To4() == nil {
		return fmt.Sprintf("[%s]:%d", e.Addr, e.Port)
	}
	return fmt.Sprintf("%s:%d", e.Addr, e.Port)
}
