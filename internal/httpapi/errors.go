package httpapi

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/ledgerdash/ledgerdash/internal/report"
	"github.com/ledgerdash/ledgerdash/internal/rollup"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func writeError(c *fiber.Ctx, status int, title, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Code:    strconv.Itoa(status),
		Title:   title,
		Message: message,
	})
}

func badRequest(message string) error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

// errorHandler maps handler errors to status codes. Internal details are
// logged but never sent to the client.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			return writeError(c, fe.Code, statusTitle(fe.Code), fe.Message)
		case errors.Is(err, report.ErrAccountNotFound):
			return writeError(c, fiber.StatusNotFound, "account_not_found", err.Error())
		case rollup.IsTreeIntegrity(err):
			return writeError(c, fiber.StatusUnprocessableEntity, "tree_integrity", err.Error())
		default:
			logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "internal_error", "internal server error")
		}
	}
}

func statusTitle(status int) string {
	msg := utils.StatusMessage(status)
	if msg == "" {
		return "error"
	}
	return strings.ReplaceAll(strings.ToLower(msg), " ", "_")
}
