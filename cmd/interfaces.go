package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sniffscope/internal/pkg/capture"
	"sniffscope/internal/pkg/logger"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List network interfaces available for capture",
	Long:  `List network interfaces that sniffscope can capture on. Requires appropriate permissions.`,
	Run:   runInterfaces,
}

func runInterfaces(cmd *cobra.Command, args []string) {
	if os.Geteuid() != 0 {
		fmt.Println("Warning: Running without root privileges. Some interfaces may not be accessible.")
		fmt.Println()
	}

	devices, err := capture.ListDevices()
	if err != nil {
		logger.Error("device enumeration failed", "error", err)
		fmt.Println("Unable to list network interfaces. This may be due to insufficient permissions.")
		return
	}

	if len(devices) == 0 {
		fmt.Println("No capture devices found.")
		return
	}

	fmt.Println("Available capture devices:")
	for _, dev := range devices {
		fmt.Printf("  %s", dev.Name)
		if dev.Description != "" {
			fmt.Printf(" - %s", dev.Description)
		}
		fmt.Println()
	}
}
