package dto

import (
	"github.com/shopspring/decimal"
	"github.com/solenbank/solen_backend/internal/core/domain"
)

// CreateBusinessAccountRequest opens a business account for an owner identity.
type CreateBusinessAccountRequest struct {
	OwnerID int64  `json:"ownerID" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

// TransferOwnershipRequest rebinds the owner of an account.
type TransferOwnershipRequest struct {
	NewOwnerID int64 `json:"newOwnerID" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID string          `json:"accountID"`
	OwnerID   int64           `json:"ownerID"`
	Variant   string          `json:"variant"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

// NewAccountResponse maps a domain account to its API shape.
func NewAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: a.AccountID,
		OwnerID:   a.OwnerID,
		Variant:   string(a.Variant),
		Name:      a.Name,
		Balance:   a.Balance,
	}
}
