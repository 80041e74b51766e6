package models

// RegistrationCode represents a row in the register_codes table.
type RegistrationCode struct {
	Code string `db:"code"`
}
