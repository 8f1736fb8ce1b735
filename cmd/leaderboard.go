package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/engpower/internal/leaderboard"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		limit := d.cfg.LeaderboardSize
		if cmd.Flags().Changed("limit") {
			limit, _ = cmd.Flags().GetInt("limit")
		}
		printLeaderboard(cmd, leaderboard.Top(d.engine.Leaderboard(), limit))
		return nil
	},
}

func printLeaderboard(cmd *cobra.Command, rows []leaderboard.Entry) {
	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No scores yet.")
		return
	}

	fmt.Fprintf(out, "%-6s  %-32s  %7s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Fprintln(out, strings.Repeat("─", 64))
	for i, e := range rows {
		rank := fmt.Sprintf("%d", i+1)
		if m := leaderboard.Medal(i + 1); m != "" {
			rank = m + " " + rank
		}
		date := "-"
		if t := e.Time(); !t.IsZero() {
			date = t.Local().Format("2006-01-02")
		}
		fmt.Fprintf(out, "%-6s  %-32s  %7d  %s\n", rank, e.Username, e.Score, date)
	}
}

func init() {
	leaderboardCmd.Flags().IntP("limit", "n", 10, "Number of rows to show (-1 for all)")
}
