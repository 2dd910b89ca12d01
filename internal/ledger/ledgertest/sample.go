package ledgertest

import (
	"time"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

// Account guids in the sample book.
const (
	RootGUID      = "00000000000000000000000000000001"
	AssetsGUID    = "00000000000000000000000000000002"
	CheckingGUID  = "00000000000000000000000000000003"
	SavingsGUID   = "00000000000000000000000000000004"
	IncomeGUID    = "00000000000000000000000000000005"
	SalaryGUID    = "00000000000000000000000000000006"
	ExpensesGUID  = "00000000000000000000000000000007"
	GroceriesGUID = "00000000000000000000000000000008"
	RentGUID      = "00000000000000000000000000000009"
	DiningGUID    = "0000000000000000000000000000000a"
	EquityGUID    = "0000000000000000000000000000000b"
	OpeningGUID   = "0000000000000000000000000000000c"
	FoodGUID      = "0000000000000000000000000000000d"
	TemplateGUID  = "0000000000000000000000000000000e"
)

// SampleAccounts is a small personal chart of accounts, including the
// template root GnuCash keeps for scheduled transactions.
func SampleAccounts() []model.Account {
	return []model.Account{
		{GUID: RootGUID, Name: "Root Account", Type: model.AccountTypeRoot},
		{GUID: TemplateGUID, Name: "Template Root", Type: model.AccountTypeRoot},
		{GUID: AssetsGUID, Name: "Assets", Type: model.AccountTypeAsset, ParentGUID: RootGUID, Placeholder: true},
		{GUID: CheckingGUID, Name: "Checking", Type: model.AccountTypeBank, ParentGUID: AssetsGUID},
		{GUID: SavingsGUID, Name: "Savings", Type: model.AccountTypeBank, ParentGUID: AssetsGUID},
		{GUID: IncomeGUID, Name: "Income", Type: model.AccountTypeIncome, ParentGUID: RootGUID, Placeholder: true},
		{GUID: SalaryGUID, Name: "Salary", Type: model.AccountTypeIncome, ParentGUID: IncomeGUID},
		{GUID: ExpensesGUID, Name: "Expenses", Type: model.AccountTypeExpense, ParentGUID: RootGUID, Placeholder: true},
		{GUID: FoodGUID, Name: "Food", Type: model.AccountTypeExpense, ParentGUID: ExpensesGUID, Placeholder: true},
		{GUID: GroceriesGUID, Name: "Groceries", Type: model.AccountTypeExpense, ParentGUID: FoodGUID},
		{GUID: DiningGUID, Name: "Dining", Type: model.AccountTypeExpense, ParentGUID: FoodGUID},
		{GUID: RentGUID, Name: "Rent", Type: model.AccountTypeExpense, ParentGUID: ExpensesGUID},
		{GUID: EquityGUID, Name: "Equity", Type: model.AccountTypeEquity, ParentGUID: RootGUID, Placeholder: true},
		{GUID: OpeningGUID, Name: "Opening Balances", Type: model.AccountTypeEquity, ParentGUID: EquityGUID},
	}
}

// Sample is three months (Jan-Mar 2024) of activity:
//
//	salary 3000/month, rent 1200/month, groceries 250.50 + 199.50 + 300,
//	one dinner of 45.25 in January and a 500 transfer to savings in February.
//
// Checking ends at 5104.75; expenses total 4395.25.
func Sample() Book {
	return Book{
		Accounts: SampleAccounts(),
		Transactions: []Transaction{
			transfer(day(2024, 1, 1, 9), "Opening balance", CheckingGUID, OpeningGUID, "1000"),
			transfer(day(2024, 1, 1, 10), "Rent January", RentGUID, CheckingGUID, "1200"),
			transfer(day(2024, 1, 12, 18), "Supermarket", GroceriesGUID, CheckingGUID, "250.50"),
			transfer(day(2024, 1, 15, 20), "Pizza place", DiningGUID, CheckingGUID, "45.25"),
			transfer(day(2024, 1, 25, 8), "Salary January", CheckingGUID, SalaryGUID, "3000"),
			transfer(day(2024, 2, 1, 10), "Rent February", RentGUID, CheckingGUID, "1200"),
			transfer(day(2024, 2, 10, 12), "Savings transfer", SavingsGUID, CheckingGUID, "500"),
			transfer(day(2024, 2, 14, 18), "Supermarket", GroceriesGUID, CheckingGUID, "199.50"),
			transfer(day(2024, 2, 26, 8), "Salary February", CheckingGUID, SalaryGUID, "3000"),
			transfer(day(2024, 3, 1, 10), "Rent March", RentGUID, CheckingGUID, "1200"),
			transfer(day(2024, 3, 9, 18), "Supermarket", GroceriesGUID, CheckingGUID, "300"),
			transfer(day(2024, 3, 25, 8), "Salary March", CheckingGUID, SalaryGUID, "3000"),
		},
	}
}

func transfer(date time.Time, desc, debit, credit, amount string) Transaction {
	return Transaction{
		Date:        date,
		Description: desc,
		Splits: []Split{
			{AccountGUID: debit, Amount: amount},
			{AccountGUID: credit, Amount: "-" + amount},
		},
	}
}

func day(year int, month time.Month, d, hour int) time.Time {
	return time.Date(year, month, d, hour, 0, 0, 0, time.UTC)
}
