package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ledgerdash/ledgerdash/internal/config"
	"github.com/ledgerdash/ledgerdash/internal/ledger"
	"github.com/ledgerdash/ledgerdash/internal/logging"
	"github.com/ledgerdash/ledgerdash/internal/report"
)

const dayLayout = "2006-01-02"

// env is everything a ledger command needs, opened from flags and config.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	reader *ledger.Reader
	svc    *report.Service
}

// open loads the config, builds the logger and opens the ledger named by
// args[0] or ledger.path.
func (o *rootOptions) open(ctx context.Context, args []string) (*env, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	path := cfg.Ledger.Path
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errors.New("no ledger file: pass LEDGER_FILE or set ledger.path")
	}

	reader, err := ledger.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	logger.Debug("opened ledger", zap.String("path", reader.Path()))

	return &env{
		cfg:    cfg,
		logger: logger,
		reader: reader,
		svc:    report.NewService(reader, cfg.Display.DefaultRangeDays, logger),
	}, nil
}

func (e *env) Close() {
	if err := e.reader.Close(); err != nil {
		e.logger.Warn("closing ledger", zap.Error(err))
	}
	_ = e.logger.Sync()
}

// windowFlags are the --from/--to flags shared by the reporting commands.
type windowFlags struct {
	from string
	to   string
}

func (w *windowFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&w.from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&w.to, "to", "", "end date (YYYY-MM-DD), inclusive")
}

// parse returns the window as given, with unset ends left open.
func (w *windowFlags) parse() (report.Window, error) {
	var out report.Window
	var err error
	if w.from != "" {
		if out.From, err = time.Parse(dayLayout, w.from); err != nil {
			return report.Window{}, fmt.Errorf("invalid --from %q, want YYYY-MM-DD", w.from)
		}
	}
	if w.to != "" {
		if out.To, err = time.Parse(dayLayout, w.to); err != nil {
			return report.Window{}, fmt.Errorf("invalid --to %q, want YYYY-MM-DD", w.to)
		}
	}
	if out.Empty() {
		return report.Window{}, errors.New("--to is before --from")
	}
	return out, nil
}

// resolve is parse with unset ends filled from the dashboard's default window.
func (w *windowFlags) resolve(ctx context.Context, svc *report.Service) (report.Window, error) {
	win, err := w.parse()
	if err != nil {
		return report.Window{}, err
	}
	win, err = svc.DefaultWindow(ctx, win)
	if err != nil {
		return report.Window{}, err
	}
	if win.Empty() {
		return report.Window{}, fmt.Errorf("empty window: %s is after %s", day(win.From), day(win.To))
	}
	return win, nil
}

func formatWindow(w report.Window) string {
	return day(w.From) + " to " + day(w.To)
}

func day(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dayLayout)
}
