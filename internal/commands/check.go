package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [LEDGER_FILE]",
		Short: "Validate transactions and the account tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := opts.open(ctx, args)
			if err != nil {
				return err
			}
			defer e.Close()

			res, err := e.svc.Check(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range res.Violations {
				fmt.Fprintf(out, "FAIL %s\n", v)
			}
			problems := len(res.Violations)
			if res.Tree != nil {
				fmt.Fprintf(out, "FAIL %s\n", res.Tree)
				problems++
			}
			if problems > 0 {
				return fmt.Errorf("ledger check failed: %d problem(s)", problems)
			}
			fmt.Fprintln(out, "OK")
			return nil
		},
	}

	return cmd
}
