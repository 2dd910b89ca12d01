package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Posting is one split joined with its transaction and account.
type Posting struct {
	TxGUID      string
	SplitGUID   string
	Date        time.Time
	AccountGUID string
	AccountName string
	AccountType AccountType
	ParentGUID  string
	Description string
	Amount      decimal.Decimal // quantity, in the account's commodity
	Value       decimal.Decimal // value, in the transaction's currency
}

// Natural returns the amount with the sign a reader expects: income is
// booked as a credit (negative) and gets flipped.
func (p Posting) Natural() decimal.Decimal {
	if p.AccountType == AccountTypeIncome {
		return p.Amount.Neg()
	}
	return p.Amount
}
