package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors the accounts.type column.
type AccountType string

// Account represents a row in the accounts table.
type Account struct {
	AccountID string          `db:"account_id"`
	OwnerID   int64           `db:"owner_tg_id"`
	Type      AccountType     `db:"type"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
}
