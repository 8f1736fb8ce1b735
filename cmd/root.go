package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "engpower",
	Short: "Adaptive English phrase drills",
	Long:  "EngPower is a terminal game that drills English phrases and usages, bringing back the ones you got wrong.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/engpower/config.yaml)")
	flags.String("db", "", "Path to SQLite database file (overrides ENGPOWER_DB env var)")
	flags.String("bank", "", "Item bank to drill from (.xlsx, .csv or .yaml); the built-in bank when empty")
	flags.Float64("review-probability", 0.4, "Chance that a question revisits a past mistake (0-1)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.String("log-file", "", "Log file (default engpower.log next to the database)")
	flags.Bool("audio", true, "Read each answered sentence aloud")

	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(mistakesCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
