// Package httpapi serves the dashboard page and its JSON endpoints.
package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/ledgerdash/ledgerdash/internal/config"
	"github.com/ledgerdash/ledgerdash/internal/report"
)

type handler struct {
	svc      *report.Service
	currency string
	logger   *zap.Logger
}

// NewApp wires the routes onto a new fiber app.
func NewApp(svc *report.Service, cfg *config.Config, logger *zap.Logger) *fiber.App {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := fiber.New(fiber.Config{
		AppName:               "ledgerdash",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})
	app.Use(accessLog(logger))
	app.Use(recover.New())

	h := &handler{svc: svc, currency: cfg.Display.Currency, logger: logger}
	app.Get("/", h.index)
	app.Get("/healthz", h.health)

	api := app.Group("/api")
	api.Get("/overview", h.overview)
	api.Get("/income-expense", h.incomeExpense)
	api.Get("/averages", h.averages)
	api.Get("/sunburst", h.sunburst)
	api.Get("/accounts", h.accounts)
	api.Get("/accounts/:guid/timeline", h.timeline)
	return app
}

// accessLog logs one line per request. Errors are rendered here so the
// logged status is the one the client sees.
func accessLog(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		logger.Info("http request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", c.IP()))
		return nil
	}
}
