package dto

import (
	"github.com/solenbank/solen_backend/internal/core/domain"
)

// RegisterRequest redeems a registration code for the calling identity.
// Username and full name come from the chat front end, which knows them.
type RegisterRequest struct {
	Code     string `json:"code" binding:"required"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// RegisterResponse returns the freshly minted personal account.
type RegisterResponse struct {
	AccountID string `json:"accountID"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	TelegramID        int64  `json:"telegramID"`
	Username          string `json:"username"`
	FullName          string `json:"fullName"`
	PersonalAccountID string `json:"personalAccountID"`
}

// NewUserResponse maps a domain user to its API shape.
func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		TelegramID:        u.TelegramID,
		Username:          u.Username,
		FullName:          u.FullName,
		PersonalAccountID: u.PersonalAccountID,
	}
}
