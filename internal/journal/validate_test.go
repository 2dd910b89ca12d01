package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

// mockAccounts implements AccountChecker for testing.
type mockAccounts struct {
	ids map[string]bool
}

func (m *mockAccounts) Exists(guid string) bool {
	return m.ids[guid]
}

func newMockAccounts(ids ...string) *mockAccounts {
	m := &mockAccounts{ids: make(map[string]bool)}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

var defaultAccounts = newMockAccounts("checking", "savings", "salary", "rent", "groceries")

func transfer(tx, debit, credit, amount string) []model.Posting {
	d := dec(amount)
	return []model.Posting{
		{TxGUID: tx, SplitGUID: tx + "a", Date: date(2024, 1, 15), AccountGUID: debit, Amount: d, Value: d},
		{TxGUID: tx, SplitGUID: tx + "b", Date: date(2024, 1, 15), AccountGUID: credit, Amount: d.Neg(), Value: d.Neg()},
	}
}

func TestValidate_Balanced(t *testing.T) {
	postings := append(transfer("t1", "rent", "checking", "1200"), transfer("t2", "checking", "salary", "3000")...)
	errs := ValidateTransactions(postings, defaultAccounts)
	assert.Empty(t, errs)
}

func TestValidate_Empty(t *testing.T) {
	assert.Empty(t, ValidateTransactions(nil, defaultAccounts))
}

func TestValidate_Invariant1_Unbalanced(t *testing.T) {
	postings := transfer("t1", "rent", "checking", "1200")
	postings[1].Value = dec("-1199.99")

	errs := ValidateTransactions(postings, defaultAccounts)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Invariant)
	assert.Equal(t, "t1", errs[0].TxGUID)
	assert.Contains(t, errs[0].Description, "0.01")
}

func TestValidate_Invariant1_QuantityMayDiffer(t *testing.T) {
	// A stock purchase: quantity is shares, value is money.
	postings := transfer("t1", "savings", "checking", "500")
	postings[0].Amount = dec("3")

	assert.Empty(t, ValidateTransactions(postings, defaultAccounts))
}

func TestValidate_Invariant1_ThreeWaySplit(t *testing.T) {
	postings := []model.Posting{
		{TxGUID: "t1", SplitGUID: "a", AccountGUID: "groceries", Value: dec("40")},
		{TxGUID: "t1", SplitGUID: "b", AccountGUID: "rent", Value: dec("60")},
		{TxGUID: "t1", SplitGUID: "c", AccountGUID: "checking", Value: dec("-100")},
	}
	assert.Empty(t, ValidateTransactions(postings, defaultAccounts))
}

func TestValidate_Invariant2_SingleSplit(t *testing.T) {
	postings := []model.Posting{
		{TxGUID: "t1", SplitGUID: "a", AccountGUID: "checking", Value: dec("0")},
	}

	errs := ValidateTransactions(postings, defaultAccounts)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Invariant)
}

func TestValidate_Invariant3_UnknownAccount(t *testing.T) {
	postings := transfer("t1", "casino", "checking", "20")

	errs := ValidateTransactions(postings, defaultAccounts)
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Invariant)
	assert.Contains(t, errs[0].Description, "casino")
}

func TestValidate_MultipleErrorsInOrder(t *testing.T) {
	postings := append(transfer("t1", "casino", "checking", "20"), model.Posting{TxGUID: "t2", SplitGUID: "x", AccountGUID: "rent", Value: dec("5")})

	errs := ValidateTransactions(postings, defaultAccounts)
	require.Len(t, errs, 3)
	assert.Equal(t, 1, errs[0].Invariant)
	assert.Equal(t, "t2", errs[0].TxGUID)
	assert.Equal(t, 2, errs[1].Invariant)
	assert.Equal(t, 3, errs[2].Invariant)
}

func TestValidationError_Error(t *testing.T) {
	ve := ValidationError{Invariant: 1, TxGUID: "t1", Description: "split values sum to 1.00, want 0.00"}
	assert.Equal(t, "invariant 1 [t1]: split values sum to 1.00, want 0.00", ve.Error())
}
