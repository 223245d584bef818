package handlers

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ssk090/discord-sheet-bot/internal/config"
	"github.com/ssk090/discord-sheet-bot/internal/models"
)

// Fixed reply texts.
const (
	replyNoRecords     = "No records found."
	replyUsage         = "❌ Usage: `/add <item> <amount>`"
	replyInvalidAmount = "❌ Error: 'amount' must be a number. Usage: `/add <item> <amount>`"
	headerLastFive     = "🧾 Last 5 entries:"
	headerAll          = "🧾 All Records:"
)

// FormatAdded renders the confirmation for a recorded expense. The amount is
// forced to two decimal places.
func FormatAdded(rec models.ExpenseRecord, symbol string) string {
	return fmt.Sprintf("✅ Added: **%s** – %s%s on `%s`", rec.Item, symbol, rec.Amount.StringFixed(2), rec.Date)
}

// FormatTotal renders the total reply, forced to two decimal places.
func FormatTotal(total decimal.Decimal, symbol string) string {
	return fmt.Sprintf("💰 Total Expenses: %s%s", symbol, total.StringFixed(2))
}

// FormatList renders ledger rows according to the list mode. Entry amounts
// are rendered exactly as the ledger stored them, not reformatted.
func FormatList(rows []models.LedgerRow, mode config.ListMode, symbol string) string {
	if len(rows) == 0 {
		return replyNoRecords
	}

	header := headerLastFive
	bullet := "📌 "
	if mode == config.ListModeAll {
		header = headerAll
		bullet = "- "
	} else if len(rows) > 5 {
		rows = rows[len(rows)-5:]
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, header)
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s**%s** – %s%s on %s", bullet, r.Expense, symbol, r.Amount, r.Date))
	}
	return strings.Join(lines, "\n")
}

// FormatError renders a collaborator failure, embedding its description.
func FormatError(err error) string {
	return fmt.Sprintf("❌ Error: %v", err)
}
