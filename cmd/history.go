package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently finished sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		results, err := d.engine.History(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No sessions yet.")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %-24s  %6s  %6s  %9s  %8s\n",
			"Ended", "Player", "Score", "Best", "Correct", "Accuracy")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, r := range results {
			fmt.Fprintf(out, "%-16s  %-24s  %6d  %6d  %9s  %7.0f%%\n",
				r.EndedAt.Local().Format("2006-01-02 15:04"),
				r.Username,
				r.Score,
				r.BestStreak,
				fmt.Sprintf("%d/%d", r.Correct, r.Questions),
				r.Accuracy()*100)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
