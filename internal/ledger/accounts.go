package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

// Accounts returns every account in the book.
func (r *Reader) Accounts(ctx context.Context) ([]model.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT guid, name, account_type, parent_guid, placeholder, hidden, description
	FROM accounts
	ORDER BY name, guid`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var out []model.Account
	for rows.Next() {
		var (
			a                   model.Account
			accountType         string
			parent, description sql.NullString
			placeholder, hidden sql.NullInt64
		)
		if err := rows.Scan(&a.GUID, &a.Name, &accountType, &parent, &placeholder, &hidden, &description); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		a.Type = model.AccountType(accountType)
		a.ParentGUID = parent.String
		a.Placeholder = placeholder.Int64 != 0
		a.Hidden = hidden.Int64 != 0
		a.Description = description.String
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	return out, nil
}
