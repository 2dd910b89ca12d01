package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerdash/ledgerdash/internal/httpapi"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [LEDGER_FILE]",
		Short: "Run the web dashboard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			e, err := opts.open(ctx, args)
			if err != nil {
				return err
			}
			defer e.Close()

			if addr == "" {
				addr = e.cfg.Server.Addr
			}
			app := httpapi.NewApp(e.svc, e.cfg, e.logger)
			timeout := time.Duration(e.cfg.Server.ShutdownTimeoutSeconds) * time.Second
			return httpapi.Serve(ctx, app, addr, timeout, e.logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")

	return cmd
}
