package handlers

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts amount text into a decimal value. The text must trim
// down to exactly one numeric token. Negative values are accepted.
func ParseAmount(text string) (decimal.Decimal, error) {
	fields := strings.Fields(text)
	if len(fields) != 1 {
		return decimal.Zero, &InvalidAmountError{Text: text}
	}

	amount, err := decimal.NewFromString(fields[0])
	if err != nil {
		return decimal.Zero, &InvalidAmountError{Text: text}
	}
	return amount, nil
}
