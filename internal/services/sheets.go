package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ssk090/discord-sheet-bot/internal/config"
	"github.com/ssk090/discord-sheet-bot/internal/models"
)

// SheetsService handles interactions with the Google Sheets spreadsheet that
// acts as the ledger. The sheet layout is a header row (Expense, Amount,
// Date) followed by one row per record.
type SheetsService struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsService creates a new SheetsService instance. Extra client options
// are mainly for tests pointing the client at a fake endpoint.
func NewSheetsService(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (*SheetsService, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	clientOpts := make([]option.ClientOption, 0, len(opts)+2)
	if cfg.CredentialsFile != "" {
		clientOpts = append(clientOpts,
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(sheets.SpreadsheetsScope))
	}
	clientOpts = append(clientOpts, opts...)

	svc, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &SheetsService{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
	}, nil
}

func (s *SheetsService) rangeRef(ref string) string {
	return fmt.Sprintf("%s!%s", s.sheetName, ref)
}

// AppendRow appends one expense row after the existing table starting at A2.
func (s *SheetsService) AppendRow(ctx context.Context, item string, amount decimal.Decimal, timestamp string) error {
	vr := &sheets.ValueRange{
		Values: [][]interface{}{{item, amount.InexactFloat64(), timestamp}},
	}

	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.rangeRef("A2"), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}
	return nil
}

// AmountColumn reads every value in the amount column, header excluded.
func (s *SheetsService) AmountColumn(ctx context.Context) ([]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.rangeRef("B2:B")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read amount column: %w", err)
	}

	var amounts []string
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		amounts = append(amounts, cellString(row[0]))
	}
	return amounts, nil
}

// AllRecords reads every expense row in insertion order. A row missing any of
// the Expense, Amount or Date columns fails the whole read.
func (s *SheetsService) AllRecords(ctx context.Context) ([]models.LedgerRow, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.rangeRef("A2:C")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	rows := make([]models.LedgerRow, 0, len(resp.Values))
	for i, raw := range resp.Values {
		if len(raw) < 3 {
			return nil, fmt.Errorf("row %d is missing a column: expected Expense, Amount and Date", i+2)
		}
		rows = append(rows, models.LedgerRow{
			Expense: cellString(raw[0]),
			Amount:  cellString(raw[1]),
			Date:    cellString(raw[2]),
		})
	}
	return rows, nil
}

// cellString renders a sheet cell the way it is stored, without reformatting
// numbers.
func cellString(v interface{}) string {
	switch c := v.(type) {
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", c)
	}
}
