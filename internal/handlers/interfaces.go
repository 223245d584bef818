package handlers

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"github.com/ssk090/discord-sheet-bot/internal/models"
)

// LedgerClient defines the spreadsheet operations used by the handlers.
type LedgerClient interface {
	AppendRow(ctx context.Context, item string, amount decimal.Decimal, timestamp string) error
	AmountColumn(ctx context.Context) ([]string, error)
	AllRecords(ctx context.Context) ([]models.LedgerRow, error)
}

// MessengerClient defines the chat operations used by the handlers.
type MessengerClient interface {
	Reply(channelID, content string) error
	RespondInteraction(interaction *discordgo.Interaction, content string) error
	React(channelID, messageID, emoji string) error
}
