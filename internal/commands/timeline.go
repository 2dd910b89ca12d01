package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerdash/ledgerdash/internal/report"
)

func newTimelineCommand(opts *rootOptions) *cobra.Command {
	var win windowFlags
	var account string

	cmd := &cobra.Command{
		Use:   "timeline [LEDGER_FILE]",
		Short: "Show the running balance of one account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := opts.open(ctx, args)
			if err != nil {
				return err
			}
			defer e.Close()

			acct, suggestions, err := e.svc.ResolveAccount(ctx, account)
			if errors.Is(err, report.ErrAccountNotFound) && len(suggestions) > 0 {
				return fmt.Errorf("%w\ndid you mean: %s", err, strings.Join(suggestions, ", "))
			}
			if err != nil {
				return err
			}

			w, err := win.resolve(ctx, e.svc)
			if err != nil {
				return err
			}
			tl, err := e.svc.AccountTimeline(ctx, acct.GUID, w)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", titleStyle.Render(tl.Account.FullName), formatWindow(w))
			fmt.Fprintf(out, "Opening balance: %s\n", money(tl.Opening))
			rows := make([][]string, 0, len(tl.Points))
			for _, p := range tl.Points {
				rows = append(rows, []string{day(p.Date), p.Description, money(p.Amount), money(p.Balance)})
			}
			fmt.Fprintln(out, renderTable([]string{"Date", "Description", "Amount", "Balance"}, rows, 2, 3))
			fmt.Fprintf(out, "Closing balance: %s\n", money(tl.Closing))
			return nil
		},
	}

	win.register(cmd)
	cmd.Flags().StringVar(&account, "account", "", "account full name (e.g. Expenses/Food) or guid (required)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
