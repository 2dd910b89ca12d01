package httpapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ledgerdash/ledgerdash/internal/id"
	"github.com/ledgerdash/ledgerdash/internal/model"
	"github.com/ledgerdash/ledgerdash/internal/report"
)

const dayLayout = "2006-01-02"

func (h *handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *handler) overview(c *fiber.Ctx) error {
	ov, err := h.svc.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(ov)
}

func (h *handler) incomeExpense(c *fiber.Ctx) error {
	w, err := h.window(c)
	if err != nil {
		return err
	}
	m, err := h.svc.MonthlyIncomeExpense(c.UserContext(), w)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"window": w, "months": m.Months, "bars": m.Bars})
}

func (h *handler) averages(c *fiber.Ctx) error {
	w, err := h.window(c)
	if err != nil {
		return err
	}
	avg, err := h.svc.Averages(c.UserContext(), w)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"window": w, "currency": h.currency, "averages": avg})
}

func (h *handler) sunburst(c *fiber.Ctx) error {
	t := model.AccountType(strings.ToUpper(c.Query("type", string(model.AccountTypeExpense))))
	if !t.Valid() || t == model.AccountTypeRoot {
		return badRequest(fmt.Sprintf("invalid account type %q", c.Query("type")))
	}
	w, err := h.window(c)
	if err != nil {
		return err
	}
	hier, err := h.svc.Hierarchy(c.UserContext(), t, w)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"window": w, "type": t, "root": hier.Root, "sunburst": hier.Sunburst()})
}

func (h *handler) accounts(c *fiber.Ctx) error {
	views, err := h.svc.Accounts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(views)
}

func (h *handler) timeline(c *fiber.Ctx) error {
	guid := c.Params("guid")
	if !id.ValidGUID(guid) {
		return badRequest(fmt.Sprintf("invalid account guid %q", guid))
	}
	w, err := h.window(c)
	if err != nil {
		return err
	}
	tl, err := h.svc.AccountTimeline(c.UserContext(), strings.ReplaceAll(guid, "-", ""), w)
	if err != nil {
		return err
	}
	return c.JSON(tl)
}

// window reads from/to query parameters and fills missing ends from the
// ledger's default window.
func (h *handler) window(c *fiber.Ctx) (report.Window, error) {
	from, err := parseDay(c.Query("from"))
	if err != nil {
		return report.Window{}, badRequest(fmt.Sprintf("invalid from date %q, want YYYY-MM-DD", c.Query("from")))
	}
	to, err := parseDay(c.Query("to"))
	if err != nil {
		return report.Window{}, badRequest(fmt.Sprintf("invalid to date %q, want YYYY-MM-DD", c.Query("to")))
	}
	w, err := h.svc.DefaultWindow(c.UserContext(), report.Window{From: from, To: to})
	if err != nil {
		return report.Window{}, err
	}
	if w.Empty() {
		return report.Window{}, badRequest(fmt.Sprintf("empty window: %s is after %s",
			w.From.Format(dayLayout), w.To.Format(dayLayout)))
	}
	return w, nil
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dayLayout, s)
}
