package models

import (
	"github.com/shopspring/decimal"
)

// ExpenseRecord represents a single expense written to the ledger.
type ExpenseRecord struct {
	Item   string          `json:"item"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"` // YYYY-MM-DD HH:MM:SS, local time at creation
}

// LedgerRow is one row read back from the ledger. Amount keeps whatever
// representation the sheet stored so listings render it untouched.
type LedgerRow struct {
	Expense string `json:"expense"`
	Amount  string `json:"amount"`
	Date    string `json:"date"`
}
