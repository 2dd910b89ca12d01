package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

func newTreeCommand(opts *rootOptions) *cobra.Command {
	var win windowFlags
	var accountType string

	cmd := &cobra.Command{
		Use:   "tree [LEDGER_FILE]",
		Short: "Show rolled-up balances of an account hierarchy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseType(accountType)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			e, err := opts.open(ctx, args)
			if err != nil {
				return err
			}
			defer e.Close()

			w, err := win.resolve(ctx, e.svc)
			if err != nil {
				return err
			}
			h, err := e.svc.Hierarchy(ctx, t, w)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(h.Nodes) == 0 {
				fmt.Fprintf(out, "No %s accounts.\n", t)
				return nil
			}
			rows := make([][]string, 0, len(h.Nodes))
			for _, n := range h.Nodes {
				rows = append(rows, []string{strings.Repeat("  ", n.Depth) + n.Label, string(n.Type), money(n.Value)})
			}
			fmt.Fprintf(out, "%s %s\n", titleStyle.Render(string(t)), formatWindow(w))
			fmt.Fprintln(out, renderTable([]string{"Account", "Type", "Balance " + e.cfg.Display.Currency}, rows, 2))
			return nil
		},
	}

	win.register(cmd)
	cmd.Flags().StringVar(&accountType, "type", string(model.AccountTypeExpense), "account type to roll up")

	return cmd
}

func parseType(s string) (model.AccountType, error) {
	t := model.AccountType(strings.ToUpper(s))
	if !t.Valid() || t == model.AccountTypeRoot {
		return "", fmt.Errorf("invalid account type %q", s)
	}
	return t, nil
}
