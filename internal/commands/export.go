package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerdash/ledgerdash/internal/accounts"
	"github.com/ledgerdash/ledgerdash/internal/journal"
	"github.com/ledgerdash/ledgerdash/internal/model"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var win windowFlags
	var accountType string
	var outPath string
	var postings bool

	cmd := &cobra.Command{
		Use:   "export [LEDGER_FILE]",
		Short: "Export rolled-up balances or postings as CSV",
		Long: "Export rolled-up balances of one account type, or with --postings every posting,\n" +
			"as CSV. Without --from/--to the whole ledger is exported.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := win.parse()
			if err != nil {
				return err
			}
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

			var write func(io.Writer) error
			if postings {
				ps, err := e.svc.Postings(ctx, w)
				if err != nil {
					return err
				}
				write = func(out io.Writer) error { return journal.WritePostings(out, ps) }
			} else {
				h, err := e.svc.Hierarchy(ctx, t, w)
				if err != nil {
					return err
				}
				write = func(out io.Writer) error { return accounts.WriteBalances(out, h.Rows()) }
			}

			if outPath == "" {
				return write(cmd.OutOrStdout())
			}
			return writeFile(outPath, write)
		},
	}

	win.register(cmd)
	cmd.Flags().StringVar(&accountType, "type", string(model.AccountTypeExpense), "account type for the balances export")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&postings, "postings", false, "export postings instead of balances")

	return cmd
}

// writeFile creates path and fills it with write. The file is only created
// once the data is ready, and a failed close is reported.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
