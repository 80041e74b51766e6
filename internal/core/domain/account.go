package domain

import (
	"github.com/shopspring/decimal"
)

// AccountVariant distinguishes the three kinds of accounts in the ledger.
type AccountVariant string

const (
	Personal AccountVariant = "PERSONAL"
	Business AccountVariant = "BUSINESS"
	Bank     AccountVariant = "BANK"
)

// BankAccountID is the reserved identifier of the central bank account. It is
// created once at bootstrap and can never be deleted.
const BankAccountID = "ACC-001"

// Account represents a single ledger account. Balance is an exact decimal and
// must never be negative.
type Account struct {
	AccountID string          `json:"accountID"`
	OwnerID   int64           `json:"ownerID"` // external (Telegram) identity of the owner
	Variant   AccountVariant  `json:"variant"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

// IsBank reports whether this is the reserved central bank account.
func (a Account) IsBank() bool {
	return a.AccountID == BankAccountID
}
