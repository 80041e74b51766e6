package models

// Admin represents a row in the admins table.
type Admin struct {
	TelegramID int64  `db:"tg_id"`
	Name       string `db:"name"`
}
