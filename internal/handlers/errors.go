package handlers

import (
	"errors"
	"fmt"
)

// ErrMissingAmount signals an add command with no tokens after the verb.
var ErrMissingAmount = errors.New("missing amount")

// InvalidAmountError signals amount text that does not parse as a number.
type InvalidAmountError struct {
	Text string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q", e.Text)
}

// LedgerError wraps a failure of the spreadsheet collaborator.
type LedgerError struct {
	Op  string // "read" or "append"
	Err error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s failed: %v", e.Op, e.Err)
}

func (e *LedgerError) Unwrap() error { return e.Err }
