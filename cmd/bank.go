package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/engpower/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect item banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the items of the configured bank (optionally filtered by type)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(cfg)
		if err != nil {
			return err
		}

		items := b.Items()
		if c, _ := cmd.Flags().GetString("category"); c != "" {
			cat, ok := bank.ParseCategory(c)
			if !ok {
				return fmt.Errorf("unknown category %q (want phrase or usage)", c)
			}
			items = b.ByCategory(cat)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%5s  %-8s  %-40s  %s\n", "ID", "Type", "English", "Chinese")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, it := range items {
			target := it.Target
			if len(target) > 40 {
				target = target[:37] + "..."
			}
			fmt.Fprintf(out, "%5d  %-8s  %-40s  %s\n", it.ID, bank.CategoryDisplayName(it.Category), target, it.Source)
		}
		fmt.Fprintf(out, "\n%d items\n", len(items))
		return nil
	},
}

var bankCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a bank file (.xlsx, .csv or .yaml)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d items (%d phrases, %d usages)\n",
			args[0], b.Len(),
			len(b.ByCategory(bank.CategoryPhrase)),
			len(b.ByCategory(bank.CategoryUsage)))
		return nil
	},
}

func init() {
	bankListCmd.Flags().String("category", "", "Filter by type (phrase or usage)")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankCheckCmd)
}
