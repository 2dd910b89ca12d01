package ledger

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerdash/ledgerdash/internal/id"
	"github.com/ledgerdash/ledgerdash/internal/ledger/ledgertest"
	"github.com/ledgerdash/ledgerdash/internal/model"
)

func openSample(t *testing.T) *Reader {
	t.Helper()
	path := ledgertest.WriteSample(t, t.TempDir())
	r, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "nope.gnucash"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpen_NotLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.db")
	ledgertest.Exec(t, path, `CREATE TABLE things (id integer)`)

	_, err := Open(context.Background(), path)
	require.ErrorIs(t, err, ErrNotLedger)
}

func TestAccounts(t *testing.T) {
	r := openSample(t)

	accts, err := r.Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accts, len(ledgertest.SampleAccounts()))

	byID := make(map[string]model.Account)
	for _, a := range accts {
		byID[a.GUID] = a
	}

	root := byID[ledgertest.RootGUID]
	assert.Equal(t, model.AccountTypeRoot, root.Type)
	assert.Empty(t, root.ParentGUID)

	food := byID[ledgertest.FoodGUID]
	assert.Equal(t, "Food", food.Name)
	assert.Equal(t, ledgertest.ExpensesGUID, food.ParentGUID)
	assert.True(t, food.Placeholder)
	assert.False(t, food.Hidden)

	assert.False(t, byID[ledgertest.CheckingGUID].Placeholder)
}

func TestPostings_AllTypes(t *testing.T) {
	r := openSample(t)

	postings, err := r.Postings(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, postings, 24, "12 transactions with 2 splits each")

	for i := 1; i < len(postings); i++ {
		assert.False(t, postings[i].Date.Before(postings[i-1].Date), "postings must be date ordered")
	}

	first := postings[0]
	assert.Equal(t, "Opening balance", first.Description)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), first.Date)
}

func TestPostings_GUIDs(t *testing.T) {
	r := openSample(t)

	postings, err := r.Postings(context.Background(), Filter{})
	require.NoError(t, err)

	txs := make(map[string]int)
	splits := make(map[string]bool)
	for _, p := range postings {
		assert.True(t, id.ValidGUID(p.TxGUID), p.TxGUID)
		assert.True(t, id.ValidGUID(p.SplitGUID), p.SplitGUID)
		assert.Len(t, p.SplitGUID, 32)
		assert.False(t, splits[p.SplitGUID], "duplicate split guid %s", p.SplitGUID)
		splits[p.SplitGUID] = true
		txs[p.TxGUID]++
	}
	assert.Len(t, txs, 12)
	for tx, n := range txs {
		assert.Equal(t, 2, n, tx)
	}
}

func TestPostings_TypeFilter(t *testing.T) {
	r := openSample(t)

	postings, err := r.Postings(context.Background(), Filter{Types: []model.AccountType{model.AccountTypeIncome, model.AccountTypeExpense}})
	require.NoError(t, err)
	require.Len(t, postings, 10)

	for _, p := range postings {
		assert.Contains(t, []model.AccountType{model.AccountTypeIncome, model.AccountTypeExpense}, p.AccountType)
	}

	var salary decimal.Decimal
	for _, p := range postings {
		if p.AccountGUID == ledgertest.SalaryGUID {
			salary = salary.Add(p.Amount)
			assert.Equal(t, "Salary", p.AccountName)
			assert.Equal(t, ledgertest.IncomeGUID, p.ParentGUID)
		}
	}
	assert.True(t, dec("-9000").Equal(salary), "income is booked negative, got %s", salary)
}

func TestPostings_AccountAndDateFilter(t *testing.T) {
	r := openSample(t)

	postings, err := r.Postings(context.Background(), Filter{
		AccountGUID: ledgertest.GroceriesGUID,
		From:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		To:          time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, postings, 2, "To covers the whole day of 2024-03-09")
	assert.True(t, dec("199.50").Equal(postings[0].Amount))
	assert.True(t, dec("300").Equal(postings[1].Amount))
	assert.True(t, postings[1].Value.Equal(postings[1].Amount))
}

func TestPostings_LegacyDates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.gnucash")
	book := ledgertest.Sample()
	book.LegacyDates = true
	ledgertest.Write(t, path, book)

	r, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer r.Close()

	postings, err := r.Postings(context.Background(), Filter{AccountGUID: ledgertest.SalaryGUID})
	require.NoError(t, err)
	require.Len(t, postings, 3)
	assert.Equal(t, time.Date(2024, 1, 25, 8, 0, 0, 0, time.UTC), postings[0].Date)
}

func TestPostings_ZeroDenominator(t *testing.T) {
	path := ledgertest.WriteSample(t, t.TempDir())
	ledgertest.Exec(t, path, `UPDATE splits SET quantity_denom = 0 WHERE account_guid = ?`, ledgertest.RentGUID)

	r, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Postings(context.Background(), Filter{AccountGUID: ledgertest.RentGUID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero denominator")
}

func TestRatio(t *testing.T) {
	tests := []struct {
		num, denom int64
		want       string
	}{
		{12345, 100, "123.45"},
		{-4525, 100, "-45.25"},
		{7, 1, "7"},
		{1, 1000000, "0.000001"},
		{123456789, 1000000000000000000, "0.000000000123456789"},
		{1, 4, "0.25"},
		{1, 3, "0.3333333333333333"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.num, tt.denom), func(t *testing.T) {
			got, err := ratio(tt.num, tt.denom)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	_, err := ratio(1, 0)
	require.Error(t, err)
}

func TestPostings_BadDate(t *testing.T) {
	path := ledgertest.WriteSample(t, t.TempDir())
	ledgertest.Exec(t, path, `UPDATE transactions SET post_date = 'yesterday' WHERE description = 'Pizza place'`)

	r, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Postings(context.Background(), Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yesterday")
}

func TestPostings_UnknownAccountKept(t *testing.T) {
	path := ledgertest.WriteSample(t, t.TempDir())
	ledgertest.Exec(t, path, `UPDATE splits SET account_guid = 'ffffffffffffffffffffffffffffffff' WHERE account_guid = ?`, ledgertest.DiningGUID)

	r, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer r.Close()

	postings, err := r.Postings(context.Background(), Filter{AccountGUID: "ffffffffffffffffffffffffffffffff"})
	require.NoError(t, err)
	require.Len(t, postings, 1)
	assert.Empty(t, postings[0].AccountName)
	assert.Empty(t, postings[0].AccountType)
}

func TestDateRange(t *testing.T) {
	r := openSample(t)

	from, to, err := r.DateRange(context.Background(), model.AccountTypeIncome, model.AccountTypeExpense)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 25, 8, 0, 0, 0, time.UTC), to)

	_, _, err = r.DateRange(context.Background(), model.AccountTypeTrading)
	require.ErrorIs(t, err, ErrNoTransactions)
}

func TestLastUpdated(t *testing.T) {
	r := openSample(t)

	stamp := time.Date(2024, 4, 2, 12, 30, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(r.Path(), stamp, stamp))

	got, err := r.LastUpdated()
	require.NoError(t, err)
	assert.True(t, stamp.Equal(got))
}

func TestFilterContains(t *testing.T) {
	f := Filter{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, f.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, f.Contains(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, f.Contains(time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, f.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, Filter{}.Contains(time.Time{}))
}
