package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	var win windowFlags

	cmd := &cobra.Command{
		Use:   "summary [LEDGER_FILE]",
		Short: "Show monthly income, expenses and averages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := opts.open(ctx, args)
			if err != nil {
				return err
			}
			defer e.Close()

			ov, err := e.svc.Overview(ctx)
			if err != nil {
				return err
			}
			w, err := win.resolve(ctx, e.svc)
			if err != nil {
				return err
			}
			monthly, err := e.svc.MonthlyIncomeExpense(ctx, w)
			if err != nil {
				return err
			}
			avg, err := e.svc.Averages(ctx, w)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cur := e.cfg.Display.Currency
			fmt.Fprintln(out, titleStyle.Render("Ledger"))
			fmt.Fprintf(out, "  File:          %s\n", ov.LedgerPath)
			fmt.Fprintf(out, "  Last updated:  %s\n", ov.LastUpdated.Format("2006-01-02 15:04"))
			if !ov.HasEntries {
				fmt.Fprintln(out, "  No income or expense entries.")
				return nil
			}
			fmt.Fprintf(out, "  Entries:       %s to %s\n", day(ov.FirstEntry), day(ov.LastEntry))
			fmt.Fprintf(out, "  Window:        %s\n\n", formatWindow(w))

			rows := make([][]string, 0, len(monthly.Months))
			for _, m := range monthly.Months {
				rows = append(rows, []string{m.Month, money(m.Income), money(m.Expense), money(m.Balance)})
			}
			fmt.Fprintln(out, renderTable([]string{"Month", "Income", "Expense", "Balance"}, rows, 1, 2, 3))

			fmt.Fprintln(out, titleStyle.Render("Monthly averages"))
			fmt.Fprintf(out, "  Income:   %s %s\n", money(avg.Income), cur)
			fmt.Fprintf(out, "  Expense:  %s %s\n", money(avg.Expense), cur)
			fmt.Fprintf(out, "  Balance:  %s %s\n", money(avg.Balance), cur)
			return nil
		},
	}

	win.register(cmd)

	return cmd
}
