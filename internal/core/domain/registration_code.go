package domain

// RegistrationCode is a single-use token required to mint a personal account.
// Codes exist only while unredeemed; redemption deletes the row in the same
// transaction that creates the user, so no code is ever valid twice.
type RegistrationCode struct {
	Code string `json:"code"`
}
