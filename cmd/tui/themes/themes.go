package themes

import "github.com/charmbracelet/lipgloss"

// Theme represents a color theme for the TUI
type Theme struct {
	Name string

	// General UI colors
	Background         lipgloss.Color
	Foreground         lipgloss.Color
	HeaderBg           lipgloss.Color
	HeaderFg           lipgloss.Color
	StatusBarBg        lipgloss.Color
	StatusBarFg        lipgloss.Color
	SelectionBg        lipgloss.Color
	SelectionFg        lipgloss.Color
	BorderColor        lipgloss.Color
	FocusedBorderColor lipgloss.Color

	// Protocol colors
	TCPColor     lipgloss.Color
	UDPColor     lipgloss.Color
	DNSColor     lipgloss.Color
	HTTPColor    lipgloss.Color
	TLSColor     lipgloss.Color
	SSHColor     lipgloss.Color
	ICMPColor    lipgloss.Color
	ICMPv6Color  lipgloss.Color
	ARPColor     lipgloss.Color
	UnknownColor lipgloss.Color
	ErrorColor   lipgloss.Color

	// Emphasis colors
	WarningColor lipgloss.Color
	SuccessColor lipgloss.Color
	InfoColor    lipgloss.Color
	FilterColor  lipgloss.Color
}

// Solarized color palette
var (
	solarizedBase02 = lipgloss.Color("#073642") // background highlights
	solarizedBase0  = lipgloss.Color("#839496") // body text
	solarizedBase1  = lipgloss.Color("#93a1a1") // emphasized content

	solarizedYellow  = lipgloss.Color("#b58900")
	solarizedOrange  = lipgloss.Color("#cb4b16")
	solarizedRed     = lipgloss.Color("#dc322f")
	solarizedMagenta = lipgloss.Color("#d33682")
	solarizedViolet  = lipgloss.Color("#6c71c4")
	solarizedBlue    = lipgloss.Color("#268bd2")
	solarizedCyan    = lipgloss.Color("#2aa198")
	solarizedGreen   = lipgloss.Color("#859900")
)

// Solarized returns the Solarized theme (htop-like with transparent background)
func Solarized() Theme {
	return Theme{
		Name: "Solarized",

		Background:         lipgloss.Color("0"),
		Foreground:         solarizedBase0,
		HeaderBg:           solarizedGreen,
		HeaderFg:           lipgloss.Color("0"),
		StatusBarBg:        solarizedBase02,
		StatusBarFg:        solarizedBase0,
		SelectionBg:        solarizedCyan,
		SelectionFg:        lipgloss.Color("0"),
		BorderColor:        solarizedBase1,
		FocusedBorderColor: solarizedRed,

		TCPColor:     solarizedCyan,
		UDPColor:     solarizedGreen,
		DNSColor:     solarizedYellow,
		HTTPColor:    solarizedViolet,
		TLSColor:     solarizedMagenta,
		SSHColor:     solarizedMagenta,
		ICMPColor:    solarizedOrange,
		ICMPv6Color:  solarizedOrange,
		ARPColor:     solarizedYellow,
		UnknownColor: solarizedBase0,
		ErrorColor:   solarizedRed,

		WarningColor: solarizedOrange,
		SuccessColor: solarizedGreen,
		InfoColor:    solarizedBlue,
		FilterColor:  solarizedViolet,
	}
}

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	switch name {
	case "solarized":
		return Solarized()
	default:
		return Solarized()
	}
}

// ProtocolColor maps a protocol label to its display color.
func (t Theme) ProtocolColor(protocol string) lipgloss.Color {
	switch protocol {
	case "TCP":
		return t.TCPColor
	case "UDP":
		return t.UDPColor
	case "DNS":
		return t.DNSColor
	case "HTTP":
		return t.HTTPColor
	case "TLS":
		return t.TLSColor
	case "SSH":
		return t.SSHColor
	case "ICMP":
		return t.ICMPColor
	case "ICMPv6":
		return t.ICMPv6Color
	case "ARP":
		return t.ARPColor
	default:
		return t.UnknownColor
	}
}
