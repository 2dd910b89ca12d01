package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

// Header is the CSV header for a postings export.
const Header = "date,tx_guid,split_guid,account_guid,account_name,account_type,description,amount,value"

const (
	numFields    = 9
	dateFormat   = "2006-01-02"
	colDate      = 0
	colTxGUID    = 1
	colSplitGUID = 2
	colAcctGUID  = 3
	colAcctName  = 4
	colAcctType  = 5
	colDesc      = 6
	colAmount    = 7
	colValue     = 8
)

// WritePostings writes postings to w (including header).
func WritePostings(w io.Writer, postings []model.Posting) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, p := range postings {
		if err := cw.Write(MarshalPosting(p)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalPosting converts a Posting to a CSV row ([]string).
func MarshalPosting(p model.Posting) []string {
	row := make([]string, numFields)
	row[colDate] = p.Date.Format(dateFormat)
	row[colTxGUID] = p.TxGUID
	row[colSplitGUID] = p.SplitGUID
	row[colAcctGUID] = p.AccountGUID
	row[colAcctName] = p.AccountName
	row[colAcctType] = string(p.AccountType)
	row[colDesc] = p.Description
	row[colAmount] = p.Amount.String()
	row[colValue] = p.Value.String()
	return row
}
