package report

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/ledgerdash/ledgerdash/internal/id"
	"github.com/ledgerdash/ledgerdash/internal/model"
)

// Bar kinds.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Month is one month of income and expense. Both are positive for normal activity.
type Month struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`

	incomeN, expenseN int
}

// Bar is one posting in the stacked monthly chart. Amount is signed for a
// relative bar layout: income up, expense down.
type Bar struct {
	Month       string          `json:"month"`
	Kind        string          `json:"kind"`
	Account     string          `json:"account"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Monthly is the income/expense chart data.
type Monthly struct {
	Months []Month `json:"months"`
	Bars   []Bar   `json:"bars"`
}

// Averages are mean monthly totals over the months with activity of each kind.
type Averages struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlyIncomeExpense groups income and expense postings in w by month.
func (s *Service) MonthlyIncomeExpense(ctx context.Context, w Window) (Monthly, error) {
	postings, err := s.incomeExpense(ctx, w)
	if err != nil {
		return Monthly{}, err
	}

	byMonth := make(map[string]*Month)
	out := Monthly{Bars: make([]Bar, 0, len(postings))}
	for _, p := range postings {
		key := id.FormatMonth(p.Date)
		m, ok := byMonth[key]
		if !ok {
			m = &Month{Month: key}
			byMonth[key] = m
		}

		amount := p.Natural()
		bar := Bar{Month: key, Account: p.AccountName, Description: p.Description}
		if p.AccountType == model.AccountTypeIncome {
			m.Income = m.Income.Add(amount)
			m.incomeN++
			bar.Kind, bar.Amount = KindIncome, amount
		} else {
			m.Expense = m.Expense.Add(amount)
			m.expenseN++
			bar.Kind, bar.Amount = KindExpense, amount.Neg()
		}
		out.Bars = append(out.Bars, bar)
	}

	out.Months = make([]Month, 0, len(byMonth))
	for _, m := range byMonth {
		m.Balance = m.Income.Sub(m.Expense)
		out.Months = append(out.Months, *m)
	}
	slices.SortFunc(out.Months, func(a, b Month) int {
		if a.Month < b.Month {
			return -1
		}
		if a.Month > b.Month {
			return 1
		}
		return 0
	})
	return out, nil
}

// Averages returns the mean monthly income and expense in w.
func (s *Service) Averages(ctx context.Context, w Window) (Averages, error) {
	monthly, err := s.MonthlyIncomeExpense(ctx, w)
	if err != nil {
		return Averages{}, err
	}

	var income, expense decimal.Decimal
	var incomeMonths, expenseMonths int64
	for _, m := range monthly.Months {
		if m.incomeN > 0 {
			income = income.Add(m.Income)
			incomeMonths++
		}
		if m.expenseN > 0 {
			expense = expense.Add(m.Expense)
			expenseMonths++
		}
	}

	avg := Averages{Income: mean(income, incomeMonths), Expense: mean(expense, expenseMonths)}
	avg.Balance = avg.Income.Sub(avg.Expense)
	return avg, nil
}

func (s *Service) incomeExpense(ctx context.Context, w Window) ([]model.Posting, error) {
	f := w.filter()
	f.Types = []model.AccountType{model.AccountTypeIncome, model.AccountTypeExpense}
	postings, err := s.src.Postings(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("loading income and expense postings: %w", err)
	}
	return postings, nil
}

func mean(sum decimal.Decimal, n int64) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(n))
}
