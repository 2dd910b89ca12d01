package ledger

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

// GnuCash has written post_date in both layouts over the years.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"20060102150405",
}

// Filter narrows a postings query. Zero values mean "no restriction".
// From is inclusive; To includes the whole day it falls on.
type Filter struct {
	Types       []model.AccountType
	AccountGUID string
	From        time.Time
	To          time.Time
}

// Contains reports whether t falls inside the filter's date window.
func (f Filter) Contains(t time.Time) bool {
	if !f.From.IsZero() && t.Before(f.From) {
		return false
	}
	if !f.To.IsZero() {
		end := time.Date(f.To.Year(), f.To.Month(), f.To.Day(), 0, 0, 0, 0, f.To.Location()).AddDate(0, 0, 1)
		if !t.Before(end) {
			return false
		}
	}
	return true
}

// Postings returns the splits matching f, ordered by date then split guid.
func (r *Reader) Postings(ctx context.Context, f Filter) ([]model.Posting, error) {
	query := `
	SELECT
	  t.guid, s.guid, t.post_date,
	  s.quantity_num, s.quantity_denom, s.value_num, s.value_denom,
	  s.account_guid,
	  COALESCE(a.name, ''), COALESCE(a.account_type, ''), COALESCE(a.parent_guid, ''),
	  COALESCE(t.description, '')
	FROM transactions t
	INNER JOIN splits s ON s.tx_guid = t.guid
	LEFT JOIN accounts a ON s.account_guid = a.guid`

	var where []string
	var args []any
	if len(f.Types) > 0 {
		marks := make([]string, len(f.Types))
		for i, typ := range f.Types {
			marks[i] = "?"
			args = append(args, string(typ))
		}
		where = append(where, "a.account_type IN ("+strings.Join(marks, ", ")+")")
	}
	if f.AccountGUID != "" {
		where = append(where, "s.account_guid = ?")
		args = append(args, f.AccountGUID)
	}
	if len(where) > 0 {
		query += "\n\tWHERE " + strings.Join(where, " AND ")
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying postings: %w", err)
	}
	defer rows.Close()

	var out []model.Posting
	for rows.Next() {
		var (
			p                          model.Posting
			postDate, accountType      string
			qNum, qDenom, vNum, vDenom int64
		)
		if err := rows.Scan(&p.TxGUID, &p.SplitGUID, &postDate, &qNum, &qDenom, &vNum, &vDenom,
			&p.AccountGUID, &p.AccountName, &accountType, &p.ParentGUID, &p.Description); err != nil {
			return nil, fmt.Errorf("scanning posting: %w", err)
		}

		p.Date, err = parseDate(postDate)
		if err != nil {
			return nil, fmt.Errorf("split %s: %w", p.SplitGUID, err)
		}
		if !f.Contains(p.Date) {
			continue
		}
		p.AccountType = model.AccountType(accountType)

		if p.Amount, err = ratio(qNum, qDenom); err != nil {
			return nil, fmt.Errorf("split %s quantity: %w", p.SplitGUID, err)
		}
		if p.Value, err = ratio(vNum, vDenom); err != nil {
			return nil, fmt.Errorf("split %s value: %w", p.SplitGUID, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading postings: %w", err)
	}

	slices.SortStableFunc(out, func(a, b model.Posting) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.SplitGUID, b.SplitGUID)
	})
	return out, nil
}

// DateRange returns the first and last posting dates for the given account types
// (all types when none are given).
func (r *Reader) DateRange(ctx context.Context, types ...model.AccountType) (time.Time, time.Time, error) {
	postings, err := r.Postings(ctx, Filter{Types: types})
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if len(postings) == 0 {
		return time.Time{}, time.Time{}, ErrNoTransactions
	}
	return postings[0].Date, postings[len(postings)-1].Date, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized post_date %q", s)
}

func ratio(num, denom int64) (decimal.Decimal, error) {
	if denom == 0 {
		return decimal.Decimal{}, fmt.Errorf("zero denominator for %d", num)
	}
	if exp, ok := decimalExp(denom); ok {
		return decimal.New(num, -exp), nil
	}
	return decimal.NewFromInt(num).Div(decimal.NewFromInt(denom)), nil
}

// decimalExp returns e when denom is 10^e.
func decimalExp(denom int64) (int32, bool) {
	var exp int32
	for denom > 1 && denom%10 == 0 {
		denom /= 10
		exp++
	}
	return exp, denom == 1
}
