package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/ssk090/discord-sheet-bot/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// Dispatch executes a parsed command and renders the reply. ok is false when
// no reply should be sent (unrecognized input on the legacy path). Every
// error is converted to a user-visible reply here and never propagates to the
// event loop; err only reports whether the operation failed.
func (d *Dependencies) Dispatch(ctx context.Context, cmd Command) (reply string, ok bool, err error) {
	switch cmd.Kind {
	case CommandAdd:
		reply, err = d.addExpense(ctx, cmd.Item, cmd.AmountText)
	case CommandTotal:
		reply, err = d.totalExpenses(ctx)
	case CommandList:
		reply, err = d.listExpenses(ctx)
	default:
		return "", false, nil
	}

	if err != nil {
		return d.errorReply(cmd.Kind.String(), err), true, err
	}
	return reply, true, nil
}

// errorReply logs the failure and picks the reply template for its kind.
func (d *Dependencies) errorReply(verb string, err error) string {
	log.Error().Err(err).Str("command", verb).Msg("command failed")

	var invalid *InvalidAmountError
	switch {
	case errors.As(err, &invalid):
		return replyInvalidAmount
	case errors.Is(err, ErrMissingAmount):
		return replyUsage
	default:
		return FormatError(err)
	}
}

// addExpense validates the amount, appends a new row and renders the
// confirmation. Appends are never deduplicated; identical adds append
// identical rows.
func (d *Dependencies) addExpense(ctx context.Context, item, amountText string) (string, error) {
	amount, err := ParseAmount(amountText)
	if err != nil {
		return "", err
	}

	rec := models.ExpenseRecord{
		Item:   item,
		Amount: amount,
		Date:   d.now().Format(timestampLayout),
	}
	if err := d.Ledger.AppendRow(ctx, rec.Item, rec.Amount, rec.Date); err != nil {
		return "", &LedgerError{Op: "append", Err: err}
	}
	return FormatAdded(rec, d.Config.CurrencySymbol), nil
}

// totalExpenses sums the amount column. A stored value that fails numeric
// coercion fails the whole operation.
func (d *Dependencies) totalExpenses(ctx context.Context) (string, error) {
	amounts, err := d.Ledger.AmountColumn(ctx)
	if err != nil {
		return "", &LedgerError{Op: "read", Err: err}
	}

	total := decimal.Zero
	for _, a := range amounts {
		v, err := decimal.NewFromString(strings.TrimSpace(a))
		if err != nil {
			return "", &LedgerError{Op: "read", Err: fmt.Errorf("amount %q is not numeric", a)}
		}
		total = total.Add(v)
	}
	return FormatTotal(total, d.Config.CurrencySymbol), nil
}

// listExpenses renders all records according to the configured list mode.
func (d *Dependencies) listExpenses(ctx context.Context) (string, error) {
	rows, err := d.Ledger.AllRecords(ctx)
	if err != nil {
		return "", &LedgerError{Op: "read", Err: err}
	}
	return FormatList(rows, d.Config.ListMode, d.Config.CurrencySymbol), nil
}
