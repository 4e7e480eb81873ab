package main

import (
	"github.com/spf13/cobra"
)

var printEveryFrame bool

var runCmd = &cobra.Command{
	Use:   "run <script.toml>",
	Short: "Replay a navigation script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		s, err := loadScript(args[0])
		if err != nil {
			return err
		}
		sim, err := newSimulator(cfg, s, cmd.OutOrStdout(), printEveryFrame)
		if err != nil {
			return err
		}
		return sim.run(s)
	},
}

func init() {
	runCmd.Flags().BoolVar(&printEveryFrame, "every", false, "Print the layout after every frame, not only after each step")
	rootCmd.AddCommand(runCmd)
}
