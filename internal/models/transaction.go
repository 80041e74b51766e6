package models

import (
	"github.com/shopspring/decimal"
)

// Transaction represents a row in the transactions audit table.
type Transaction struct {
	TxID        string          `db:"txid"`
	FromAccount string          `db:"from_acc"`
	ToAccount   string          `db:"to_acc"`
	Amount      decimal.Decimal `db:"amount"`
	Status      string          `db:"status"`
}
