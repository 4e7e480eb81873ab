package main

import (
	"github.com/BrandonKowalski/panestack/pkg/panestack"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logPath    string
)

var rootCmd = &cobra.Command{
	Use:   "navsim",
	Short: "Replay navigation scripts against a headless panestack container",
	Long: `navsim drives a panestack Container without a window. Scripts push and
pop screens, drag the back gesture and advance time; navsim prints the pane
rectangles and the stack after every frame or step.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file (defaults to built-in values)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "Also write logs to this file")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if logPath != "" {
		panestack.SetLogPath(logPath)
	}
	panestack.SetRawLogLevel(logLevel)
	return nil
}

func loadConfig() (panestack.Config, error) {
	if configPath == "" {
		return panestack.DefaultConfig(), nil
	}
	return panestack.LoadConfig(configPath)
}
