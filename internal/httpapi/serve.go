package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Serve runs app on addr until ctx is cancelled, then shuts down, waiting at
// most timeout for in-flight requests.
func Serve(ctx context.Context, app *fiber.App, addr string, timeout time.Duration, logger *zap.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("starting dashboard", zap.String("addr", "http://"+addr))
		errc <- app.Listen(addr)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("listening on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down dashboard", zap.Duration("timeout", timeout))
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errc; err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	logger.Info("dashboard stopped")
	return nil
}
