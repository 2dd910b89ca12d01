// Package ledgertest writes small GnuCash-schema SQLite books for tests.
package ledgertest

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ledgerdash/ledgerdash/internal/id"
	"github.com/ledgerdash/ledgerdash/internal/model"
)

const schema = `
CREATE TABLE accounts (
  guid text(32) PRIMARY KEY NOT NULL,
  name text(2048) NOT NULL,
  account_type text(2048) NOT NULL,
  commodity_guid text(32),
  commodity_scu integer NOT NULL DEFAULT 100,
  non_std_scu integer NOT NULL DEFAULT 0,
  parent_guid text(32),
  code text(2048),
  description text(2048),
  hidden integer,
  placeholder integer
);
CREATE TABLE transactions (
  guid text(32) PRIMARY KEY NOT NULL,
  currency_guid text(32) NOT NULL DEFAULT '',
  num text(2048) NOT NULL DEFAULT '',
  post_date text(19),
  enter_date text(19),
  description text(2048)
);
CREATE TABLE splits (
  guid text(32) PRIMARY KEY NOT NULL,
  tx_guid text(32) NOT NULL,
  account_guid text(32) NOT NULL,
  memo text(2048) NOT NULL DEFAULT '',
  action text(2048) NOT NULL DEFAULT '',
  reconcile_state text(1) NOT NULL DEFAULT 'n',
  reconcile_date text(19),
  value_num bigint NOT NULL,
  value_denom bigint NOT NULL,
  quantity_num bigint NOT NULL,
  quantity_denom bigint NOT NULL,
  lot_guid text(32)
);`

// Book is the content of a fixture ledger.
type Book struct {
	Accounts     []model.Account
	Transactions []Transaction
	// LegacyDates writes post_date as "20060102150405" like old GnuCash versions.
	LegacyDates bool
}

// Transaction is a fixture transaction. An empty GUID gets a fresh one.
type Transaction struct {
	GUID        string
	Date        time.Time
	Description string
	Splits      []Split
}

// Split is a fixture split. Value defaults to Amount and an empty GUID
// gets a fresh one.
type Split struct {
	GUID        string
	AccountGUID string
	Amount      string
	Value       string
}

// Write creates a ledger file at path containing b.
func Write(t testing.TB, path string, b Book) {
	t.Helper()

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(schema)
	require.NoError(t, err)

	for _, a := range b.Accounts {
		var parent any
		if a.ParentGUID != "" {
			parent = a.ParentGUID
		}
		_, err := db.Exec(`INSERT INTO accounts(guid, name, account_type, parent_guid, description, hidden, placeholder)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.GUID, a.Name, string(a.Type), parent, a.Description, boolInt(a.Hidden), boolInt(a.Placeholder))
		require.NoError(t, err)
	}

	layout := "2006-01-02 15:04:05"
	if b.LegacyDates {
		layout = "20060102150405"
	}
	for _, tx := range b.Transactions {
		txGUID := tx.GUID
		if txGUID == "" {
			txGUID = id.NewGUID()
		}
		date := tx.Date.UTC().Format(layout)
		_, err := db.Exec(`INSERT INTO transactions(guid, post_date, enter_date, description) VALUES (?, ?, ?, ?)`,
			txGUID, date, date, tx.Description)
		require.NoError(t, err)

		for _, s := range tx.Splits {
			splitGUID := s.GUID
			if splitGUID == "" {
				splitGUID = id.NewGUID()
			}
			value := s.Value
			if value == "" {
				value = s.Amount
			}
			_, err := db.Exec(`INSERT INTO splits(guid, tx_guid, account_guid, value_num, value_denom, quantity_num, quantity_denom)
				VALUES (?, ?, ?, ?, 100, ?, 100)`,
				splitGUID, txGUID, s.AccountGUID, cents(t, value), cents(t, s.Amount))
			require.NoError(t, err)
		}
	}
}

// Exec runs a raw statement against an existing fixture ledger.
func Exec(t testing.TB, path, query string, args ...any) {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(query, args...)
	require.NoError(t, err)
}

// WriteSample writes Sample() into dir and returns the file path.
func WriteSample(t testing.TB, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "book.gnucash")
	Write(t, path, Sample())
	return path
}

func cents(t testing.TB, s string) int64 {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d.Shift(2).IntPart()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
