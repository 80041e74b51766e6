package dto

import (
	"github.com/solenbank/solen_backend/internal/core/domain"
)

// AddAdminRequest grants admin privilege to an external identity.
type AddAdminRequest struct {
	TelegramID int64  `json:"telegramID" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

// AdminResponse defines the data returned for an admin grant.
type AdminResponse struct {
	TelegramID int64  `json:"telegramID"`
	Name       string `json:"name"`
}

// NewAdminResponse maps an admin grant to its API shape.
func NewAdminResponse(g domain.AdminGrant) AdminResponse {
	return AdminResponse{TelegramID: g.TelegramID, Name: g.Name}
}

// AddCodeRequest adds a new single-use registration code.
type AddCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
