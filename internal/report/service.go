// Package report turns ledger data into the series and tables the dashboard shows.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ledgerdash/ledgerdash/internal/accounts"
	"github.com/ledgerdash/ledgerdash/internal/ledger"
	"github.com/ledgerdash/ledgerdash/internal/model"
)

// ErrAccountNotFound is returned when an account guid or name does not resolve.
var ErrAccountNotFound = errors.New("account not found")

// Source is the read side of a ledger. *ledger.Reader implements it.
type Source interface {
	Path() string
	LastUpdated() (time.Time, error)
	Accounts(ctx context.Context) ([]model.Account, error)
	Postings(ctx context.Context, f ledger.Filter) ([]model.Posting, error)
	DateRange(ctx context.Context, types ...model.AccountType) (time.Time, time.Time, error)
}

// Window is an inclusive date range. Zero bounds are open.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Empty reports whether both ends are set and no instant falls between them.
// To covers its whole day, so From later on the same day is not empty.
func (w Window) Empty() bool {
	return !w.From.IsZero() && !w.To.IsZero() && !w.filter().Contains(w.From)
}

func (w Window) filter() ledger.Filter {
	return ledger.Filter{From: w.From, To: w.To}
}

// Service builds reports. Every call reads a fresh snapshot from the source.
type Service struct {
	src       Source
	rangeDays int
	logger    *zap.Logger
}

// NewService creates a Service. rangeDays sizes the default window.
func NewService(src Source, rangeDays int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{src: src, rangeDays: rangeDays, logger: logger}
}

// Overview describes the ledger file for the dashboard header and sidebar.
type Overview struct {
	LedgerPath  string    `json:"ledger_path"`
	LastUpdated time.Time `json:"last_updated"`
	HasEntries  bool      `json:"has_entries"`
	FirstEntry  time.Time `json:"first_entry"`
	LastEntry   time.Time `json:"last_entry"`
	Default     Window    `json:"default_window"`
}

// Overview reports file freshness and the income/expense date span. The
// default window is the last rangeDays days, clipped to the first entry.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	updated, err := s.src.LastUpdated()
	if err != nil {
		return Overview{}, err
	}
	ov := Overview{LedgerPath: s.src.Path(), LastUpdated: updated}

	first, last, err := s.src.DateRange(ctx, model.AccountTypeIncome, model.AccountTypeExpense)
	if errors.Is(err, ledger.ErrNoTransactions) {
		return ov, nil
	}
	if err != nil {
		return Overview{}, fmt.Errorf("reading date range: %w", err)
	}

	from := last.AddDate(0, 0, -s.rangeDays)
	if from.Before(first) {
		from = first
	}
	ov.HasEntries = true
	ov.FirstEntry = first
	ov.LastEntry = last
	ov.Default = Window{From: from, To: last}
	return ov, nil
}

// DefaultWindow fills open bounds of w from the overview's default window.
func (s *Service) DefaultWindow(ctx context.Context, w Window) (Window, error) {
	if !w.From.IsZero() && !w.To.IsZero() {
		return w, nil
	}
	ov, err := s.Overview(ctx)
	if err != nil {
		return Window{}, err
	}
	if w.From.IsZero() {
		w.From = ov.Default.From
	}
	if w.To.IsZero() {
		w.To = ov.Default.To
	}
	return w, nil
}

// Postings returns every posting in the window.
func (s *Service) Postings(ctx context.Context, w Window) ([]model.Posting, error) {
	return s.src.Postings(ctx, w.filter())
}

// AccountView is an account with its resolved full name.
type AccountView struct {
	GUID        string            `json:"guid"`
	Name        string            `json:"name"`
	FullName    string            `json:"full_name"`
	Type        model.AccountType `json:"type"`
	Parent      string            `json:"parent"`
	Placeholder bool              `json:"placeholder"`
}

// Accounts lists all non-root accounts ordered by full name.
func (s *Service) Accounts(ctx context.Context) ([]AccountView, error) {
	svc, err := s.chart(ctx)
	if err != nil {
		return nil, err
	}
	var out []AccountView
	for _, a := range svc.All() {
		if a.IsRoot() {
			continue
		}
		out = append(out, AccountView{
			GUID:        a.GUID,
			Name:        a.Name,
			FullName:    svc.FullName(a.GUID),
			Type:        a.Type,
			Parent:      a.ParentGUID,
			Placeholder: a.Placeholder,
		})
	}
	sortByFullName(out)
	return out, nil
}

// ResolveAccount finds an account by guid or full name. On a miss it returns
// ErrAccountNotFound together with up to three close full names.
func (s *Service) ResolveAccount(ctx context.Context, name string) (model.Account, []string, error) {
	svc, err := s.chart(ctx)
	if err != nil {
		return model.Account{}, nil, err
	}
	if a, ok := svc.FindByFullName(name); ok {
		return a, nil, nil
	}
	return model.Account{}, svc.Suggest(name, 3), fmt.Errorf("%q: %w", name, ErrAccountNotFound)
}

func (s *Service) chart(ctx context.Context) (*accounts.Service, error) {
	accts, err := s.src.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	return accounts.NewService(accts), nil
}
