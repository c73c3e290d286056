package filters

// Preset is one entry of the fixed filter catalog: a display name and the
// BPF expression it resolves to.
type Preset struct {
	Name   string
	Filter string
}

// presets is ordered display data. The final entry resolves to an empty
// expression, which clears any active filter.
var presets = []Preset{
	{"TCP Traffic", "tcp"},
	{"UDP Traffic", "udp"},
	{"HTTP Traffic", "tcp port 80 or tcp port 8080"},
	{"HTTPS Traffic", "tcp port 443"},
	{"DNS Queries", "udp port 53 or tcp port 53"},
	{"SSH Traffic", "tcp port 22"},
	{"FTP Traffic", "tcp port 21 or tcp port 20"},
	{"ICMP (Ping)", "icmp"},
	{"ARP Traffic", "arp"},
	{"IPv6 Traffic", "ip6"},
	{"Broadcast", "broadcast"},
	{"Multicast", "multicast"},
	{"Large Packets", "greater 1000"},
	{"Small Packets", "less 100"},
	{"Clear Filter", ""},
}

// Presets returns the fixed preset catalog. Callers must not mutate the
// returned slice.
func Presets() []Preset {
	return presets
}
