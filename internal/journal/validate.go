package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	TxGUID      string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.TxGUID, e.Description)
}

// AccountChecker tests whether an account guid exists in the chart of accounts.
type AccountChecker interface {
	Exists(guid string) bool
}

// ValidateTransactions enforces 3 invariants on the postings of a ledger.
func ValidateTransactions(postings []model.Posting, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	// Group postings by transaction.
	groups := make(map[string][]model.Posting)
	var groupOrder []string
	for _, p := range postings {
		if _, seen := groups[p.TxGUID]; !seen {
			groupOrder = append(groupOrder, p.TxGUID)
		}
		groups[p.TxGUID] = append(groups[p.TxGUID], p)
	}

	for _, tx := range groupOrder {
		splits := groups[tx]

		// Invariant 1: split values of a transaction sum to zero.
		total := decimal.Zero
		for _, p := range splits {
			total = total.Add(p.Value)
		}
		if !total.IsZero() {
			errs = append(errs, ValidationError{
				Invariant:   1,
				TxGUID:      tx,
				Description: fmt.Sprintf("split values sum to %s, want 0.00", total.StringFixed(2)),
			})
		}

		// Invariant 2: a transaction moves money between at least two splits.
		if len(splits) < 2 {
			errs = append(errs, ValidationError{
				Invariant:   2,
				TxGUID:      tx,
				Description: fmt.Sprintf("transaction has %d split(s), want at least 2", len(splits)),
			})
		}
	}

	// Invariant 3: valid account references.
	for _, p := range postings {
		if !accounts.Exists(p.AccountGUID) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				TxGUID:      p.TxGUID,
				Description: fmt.Sprintf("split %s references unknown account %s", p.SplitGUID, p.AccountGUID),
			})
		}
	}

	return errs
}
