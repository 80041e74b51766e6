package domain

// AdminGrant marks an external identity as a bank administrator. The bank
// owner is a deployment-time constant and is never stored as a grant.
type AdminGrant struct {
	TelegramID int64  `json:"telegramID"`
	Name       string `json:"name"`
}
