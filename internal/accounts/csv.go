package accounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

const (
	numFields    = 5
	colGUID      = 0
	colFullName  = 1
	colType      = 2
	colParent    = 3
	colBalance   = 4
	balanceScale = 2
)

// BalanceHeader is the header row written by WriteBalances.
var BalanceHeader = []string{"guid", "full_name", "account_type", "parent_guid", "balance"}

// BalanceRow is one account with its rolled-up balance.
type BalanceRow struct {
	Account  model.Account
	FullName string
	Parent   string
	Balance  decimal.Decimal
}

// WriteBalances writes a balances CSV.
func WriteBalances(w io.Writer, rows []BalanceRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(BalanceHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalBalance(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalBalance converts a BalanceRow to a CSV row.
func MarshalBalance(row BalanceRow) []string {
	rec := make([]string, numFields)
	rec[colGUID] = row.Account.GUID
	rec[colFullName] = row.FullName
	rec[colType] = string(row.Account.Type)
	rec[colParent] = row.Parent
	rec[colBalance] = row.Balance.StringFixed(balanceScale)
	return rec
}
