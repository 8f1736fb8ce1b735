package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/engpower/internal/bank"
)

var mistakesCmd = &cobra.Command{
	Use:   "mistakes [username]",
	Short: "List outstanding mistakes (all users when no name is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		history := d.engine.MistakeHistory()

		if len(args) == 0 {
			names := history.Usernames()
			if len(names) == 0 {
				fmt.Fprintln(out, "No mistakes recorded.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintf(out, "%-32s  %d\n", name, len(history.Get(name)))
			}
			return nil
		}

		ids := history.Get(args[0])
		if len(ids) == 0 {
			fmt.Fprintf(out, "%s has no outstanding mistakes.\n", args[0])
			return nil
		}

		b := d.engine.Bank()
		fmt.Fprintf(out, "%5s  %-8s  %-40s  %s\n", "ID", "Type", "English", "Chinese")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, id := range ids {
			item, ok := b.Get(id)
			if !ok {
				fmt.Fprintf(out, "%5d  %-8s  %s\n", id, "-", "(not in the current bank)")
				continue
			}
			fmt.Fprintf(out, "%5d  %-8s  %-40s  %s\n", item.ID, bank.CategoryDisplayName(item.Category), item.Target, item.Source)
		}
		fmt.Fprintf(out, "\n%d mistakes\n", len(ids))
		return nil
	},
}
