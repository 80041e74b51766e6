package models

// User represents a row in the users table.
type User struct {
	TelegramID      int64  `db:"tg_id"`
	Username        string `db:"username"`
	FullName        string `db:"full_name"`
	PersonalAccount string `db:"personal_account"`
}
