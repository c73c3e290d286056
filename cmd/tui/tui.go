package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sniffscope/internal/pkg/capture"
	"sniffscope/internal/pkg/logger"
)

var TuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive packet sniffer",
	Long:  `Start sniffscope with an interactive terminal interface for capturing and inspecting packets.`,
	Run:   runTUI,
}

var (
	device      string
	filter      string
	promiscuous bool
	themeName   string
)

func runTUI(cmd *cobra.Command, args []string) {
	// Logging goes to the rotating file; stdout belongs to the TUI.
	logger.Initialize()

	controller := capture.NewController()
	if filter != "" {
		controller.ApplyFilter(filter)
	}

	model := NewModel(controller, capture.ListDevices, device)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	TuiCmd.Flags().StringVarP(&device, "interface", "i", "", "interface to capture on")
	TuiCmd.Flags().StringVarP(&filter, "filter", "f", "", "bpf filter to apply")
	TuiCmd.Flags().BoolVarP(&promiscuous, "promiscuous", "p", true, "use promiscuous mode")
	TuiCmd.Flags().StringVar(&themeName, "theme", "solarized", "color theme")

	_ = viper.BindPFlag("promiscuous", TuiCmd.Flags().Lookup("promiscuous"))
	_ = viper.BindPFlag("tui.theme", TuiCmd.Flags().Lookup("theme"))
}
