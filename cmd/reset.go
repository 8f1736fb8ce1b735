package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear persisted game data",
	Long:  "Clear the leaderboard, a user's mistakes, the session history, or everything with --all.",
	RunE: func(cmd *cobra.Command, args []string) error {
		board, _ := cmd.Flags().GetBool("leaderboard")
		user, _ := cmd.Flags().GetString("mistakes")
		history, _ := cmd.Flags().GetBool("history")
		all, _ := cmd.Flags().GetBool("all")

		if !board && user == "" && !history && !all {
			return errors.New("nothing to reset: use --leaderboard, --mistakes <username>, --history or --all")
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if board || all {
			if err := d.engine.ResetLeaderboard(ctx); err != nil {
				return fmt.Errorf("reset leaderboard: %w", err)
			}
			fmt.Fprintln(out, "Leaderboard cleared.")
		}

		switch {
		case all:
			if err := d.engine.ResetMistakes(ctx); err != nil {
				return fmt.Errorf("reset mistakes: %w", err)
			}
			fmt.Fprintln(out, "All mistakes cleared.")
		case user != "":
			if err := d.engine.ResetMistakes(ctx, user); err != nil {
				return fmt.Errorf("reset mistakes: %w", err)
			}
			fmt.Fprintf(out, "Mistakes of %s cleared.\n", user)
		}

		if history || all {
			if err := d.engine.ResetHistory(ctx); err != nil {
				return fmt.Errorf("reset history: %w", err)
			}
			fmt.Fprintln(out, "Session history cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("leaderboard", false, "Clear the leaderboard")
	resetCmd.Flags().String("mistakes", "", "Clear the mistakes of one user")
	resetCmd.Flags().Bool("history", false, "Clear the session history")
	resetCmd.Flags().Bool("all", false, "Clear everything")
}
