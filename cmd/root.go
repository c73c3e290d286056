package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sniffscope/cmd/tui"
	"sniffscope/internal/pkg/capture"
	"sniffscope/internal/pkg/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "sniffscope",
	Short:   "sniffscope captures and inspects network traffic",
	Long:    `sniffscope is an interactive terminal packet sniffer: pick a device, apply a capture filter, and inspect packets down to the hex dump.`,
	Version: version.GetFullVersion(),
	Run: func(cmd *cobra.Command, args []string) {
		// Bare invocation opens the TUI.
		tui.TuiCmd.Run(cmd, args)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(tui.TuiCmd)
	rootCmd.AddCommand(interfacesCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sniffscope.yaml)")
}

func initConfig() {
	viper.SetDefault("promiscuous", true)
	viper.SetDefault("pcap_timeout_ms", capture.DefaultReadTimeoutMs)
	viper.SetDefault("pcap_snaplen", capture.DefaultSnapLen)
	viper.SetDefault("capture.queue_size", capture.DefaultQueueSize)
	viper.SetDefault("tui.theme", "solarized")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sniffscope")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
