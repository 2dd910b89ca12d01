package model

// AccountType is the GnuCash account_type column.
type AccountType string

const (
	AccountTypeRoot       AccountType = "ROOT"
	AccountTypeAsset      AccountType = "ASSET"
	AccountTypeBank       AccountType = "BANK"
	AccountTypeCash       AccountType = "CASH"
	AccountTypeCredit     AccountType = "CREDIT"
	AccountTypeLiability  AccountType = "LIABILITY"
	AccountTypeEquity     AccountType = "EQUITY"
	AccountTypeIncome     AccountType = "INCOME"
	AccountTypeExpense    AccountType = "EXPENSE"
	AccountTypeStock      AccountType = "STOCK"
	AccountTypeMutual     AccountType = "MUTUAL"
	AccountTypeReceivable AccountType = "RECEIVABLE"
	AccountTypePayable    AccountType = "PAYABLE"
	AccountTypeTrading    AccountType = "TRADING"
)

// AccountTypes lists every known account type, ROOT first.
var AccountTypes = []AccountType{
	AccountTypeRoot,
	AccountTypeAsset,
	AccountTypeBank,
	AccountTypeCash,
	AccountTypeCredit,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeIncome,
	AccountTypeExpense,
	AccountTypeStock,
	AccountTypeMutual,
	AccountTypeReceivable,
	AccountTypePayable,
	AccountTypeTrading,
}

// Valid reports whether t is a known GnuCash account type.
func (t AccountType) Valid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Account represents a row in the ledger's accounts table.
type Account struct {
	GUID        string
	Name        string
	Type        AccountType
	ParentGUID  string // "" = no parent
	Placeholder bool
	Hidden      bool
	Description string
}

// IsRoot reports whether the account is the book's top-level account.
func (a Account) IsRoot() bool {
	return a.Type == AccountTypeRoot
}
