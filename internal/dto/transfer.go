package dto

import (
	"github.com/shopspring/decimal"
	"github.com/solenbank/solen_backend/internal/core/domain"
)

// TransferRequest asks to move funds between two accounts. Amount is not
// range-checked at binding; the ledger validates it so even a rejected amount
// leaves its Failed audit record.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
}

// TransferResponse echoes the audit record of the attempt.
type TransferResponse struct {
	TxID          string          `json:"txID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
}

// NewTransferResponse maps an audit record to its API shape.
func NewTransferResponse(r domain.TransactionRecord) TransferResponse {
	return TransferResponse{
		TxID:          r.TxID,
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        r.Amount,
		Status:        string(r.Status),
	}
}

// AdjustBalanceRequest applies a signed delta to one account (mint/burn).
type AdjustBalanceRequest struct {
	Delta decimal.Decimal `json:"delta" binding:"required"`
}

// BalanceResponse returns the current balance of an account.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}
