package accounts

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

func TestWriteBalances(t *testing.T) {
	rows := []BalanceRow{
		{
			Account:  model.Account{GUID: "e1", Name: "Expenses", Type: model.AccountTypeExpense},
			FullName: "Expenses",
			Balance:  decimal.RequireFromString("4395.25"),
		},
		{
			Account:  model.Account{GUID: "e2", Name: "Food, Drink", Type: model.AccountTypeExpense},
			FullName: "Expenses/Food, Drink",
			Parent:   "e1",
			Balance:  decimal.RequireFromString("795.251"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBalances(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, BalanceHeader, records[0])
	assert.Equal(t, []string{"e1", "Expenses", "EXPENSE", "", "4395.25"}, records[1])
	assert.Equal(t, []string{"e2", "Expenses/Food, Drink", "EXPENSE", "e1", "795.25"}, records[2])
}

func TestWriteBalances_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBalances(&buf, nil))
	assert.Equal(t, "guid,full_name,account_type,parent_guid,balance\n", buf.String())
}
