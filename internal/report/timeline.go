package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerdash/ledgerdash/internal/ledger"
)

// TimelinePoint is one posting on an account with the balance after it.
type TimelinePoint struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
}

// Timeline is the running balance of a single account.
type Timeline struct {
	Account AccountView     `json:"account"`
	Opening decimal.Decimal `json:"opening"`
	Closing decimal.Decimal `json:"closing"`
	Points  []TimelinePoint `json:"points"`
}

// AccountTimeline returns the running balance of the account with the given
// guid. Postings before w count towards the opening balance; points are only
// emitted inside w.
func (s *Service) AccountTimeline(ctx context.Context, guid string, w Window) (Timeline, error) {
	chart, err := s.chart(ctx)
	if err != nil {
		return Timeline{}, err
	}
	acct, ok := chart.Get(guid)
	if !ok {
		return Timeline{}, fmt.Errorf("%s: %w", guid, ErrAccountNotFound)
	}

	// Everything up to the end of the window, so the opening balance is right.
	postings, err := s.src.Postings(ctx, ledger.Filter{AccountGUID: guid, To: w.To})
	if err != nil {
		return Timeline{}, fmt.Errorf("loading postings for %s: %w", guid, err)
	}

	tl := Timeline{
		Account: AccountView{
			GUID:        acct.GUID,
			Name:        acct.Name,
			FullName:    chart.FullName(acct.GUID),
			Type:        acct.Type,
			Parent:      acct.ParentGUID,
			Placeholder: acct.Placeholder,
		},
		Points: []TimelinePoint{},
	}
	inWindow := Window{From: w.From}.filter()

	var running decimal.Decimal
	for _, p := range postings {
		amount := p.Natural()
		running = running.Add(amount)
		if !inWindow.Contains(p.Date) {
			tl.Opening = running
			continue
		}
		tl.Points = append(tl.Points, TimelinePoint{
			Date:        p.Date,
			Description: p.Description,
			Amount:      amount,
			Balance:     running,
		})
	}
	tl.Closing = running
	return tl, nil
}
