package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPostingNatural(t *testing.T) {
	tests := []struct {
		accountType AccountType
		amount      string
		want        string
	}{
		{AccountTypeIncome, "-2500.00", "2500.00"},
		{AccountTypeIncome, "10", "-10"},
		{AccountTypeExpense, "42.10", "42.10"},
		{AccountTypeBank, "-42.10", "-42.10"},
	}
	for _, tt := range tests {
		p := Posting{AccountType: tt.accountType, Amount: decimal.RequireFromString(tt.amount)}
		assert.True(t, decimal.RequireFromString(tt.want).Equal(p.Natural()), "Natural(%s %s)", tt.accountType, tt.amount)
	}
}

func TestAccountTypeValid(t *testing.T) {
	for _, at := range AccountTypes {
		assert.True(t, at.Valid(), "%s should be valid", at)
	}
	assert.False(t, AccountType("expense").Valid())
	assert.False(t, AccountType("").Valid())
}

func TestAccountIsRoot(t *testing.T) {
	assert.True(t, Account{Type: AccountTypeRoot}.IsRoot())
	assert.False(t, Account{Type: AccountTypeAsset}.IsRoot())
}
