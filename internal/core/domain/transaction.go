package domain

import (
	"github.com/shopspring/decimal"
)

// TransactionStatus is the recorded outcome of a transfer attempt.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "Completed"
	StatusFailed    TransactionStatus = "Failed"
)

// TransactionRecord is an immutable audit entry for one transfer attempt,
// successful or not. Records are only ever appended, never updated or deleted,
// and are not replayed to reconstruct balances.
type TransactionRecord struct {
	TxID          string            `json:"txID"`
	FromAccountID string            `json:"fromAccountID"`
	ToAccountID   string            `json:"toAccountID"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
}
