package cli

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/clubhouse/internal/container"
	"github.com/saulo-duarte/clubhouse/internal/finance"
)

func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	var byCategory bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the financial summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stores, err := container.OpenStores(rootOpts.DataDir)
			if err != nil {
				return err
			}
			svc := finance.NewContainer(stores["finances"]).Service

			b, err := svc.Breakdown(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				if byCategory {
					return writeJSON(out, b)
				}
				return writeJSON(out, b.Summary)
			}

			fmt.Fprintf(out, "Total income:   %s\n", b.Summary.TotalIncome.StringFixed(2))
			fmt.Fprintf(out, "Total expenses: %s\n", b.Summary.TotalExpenses.StringFixed(2))
			fmt.Fprintf(out, "Balance:        %s\n", b.Summary.Balance.StringFixed(2))
			if byCategory {
				printCategories(cmd, "Income", b.IncomeByCategory)
				printCategories(cmd, "Expenses", b.ExpenseByCategory)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byCategory, "by-category", false, "include per-category totals")
	return cmd
}

func printCategories(cmd *cobra.Command, title string, totals map[string]decimal.Decimal) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s by category:\n", title)
	if len(totals) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}

	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		name := c
		if name == "" {
			name = "(uncategorized)"
		}
		fmt.Fprintf(out, "  %-20s %s\n", name, totals[c].StringFixed(2))
	}
}
