package domain

// User represents a registered member of the community. At most one User
// exists per external identity, and each User owns exactly one personal account.
type User struct {
	TelegramID        int64  `json:"telegramID"`
	Username          string `json:"username"`
	FullName          string `json:"fullName"`
	PersonalAccountID string `json:"personalAccountID"`
}
