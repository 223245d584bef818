package handlers

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"github.com/ssk090/discord-sheet-bot/internal/models"
)

// MockLedgerClient is a mock implementation of LedgerClient
type MockLedgerClient struct {
	AppendRowFunc    func(ctx context.Context, item string, amount decimal.Decimal, timestamp string) error
	AmountColumnFunc func(ctx context.Context) ([]string, error)
	AllRecordsFunc   func(ctx context.Context) ([]models.LedgerRow, error)

	AppendCalls int
}

func (m *MockLedgerClient) AppendRow(ctx context.Context, item string, amount decimal.Decimal, timestamp string) error {
	m.AppendCalls++
	if m.AppendRowFunc != nil {
		return m.AppendRowFunc(ctx, item, amount, timestamp)
	}
	return nil
}

func (m *MockLedgerClient) AmountColumn(ctx context.Context) ([]string, error) {
	if m.AmountColumnFunc != nil {
		return m.AmountColumnFunc(ctx)
	}
	return nil, nil
}

func (m *MockLedgerClient) AllRecords(ctx context.Context) ([]models.LedgerRow, error) {
	if m.AllRecordsFunc != nil {
		return m.AllRecordsFunc(ctx)
	}
	return nil, nil
}

// MockMessengerClient is a mock implementation of MessengerClient
type MockMessengerClient struct {
	Replies      []string
	Channels     []string
	Interactions []string
	Reactions    []string

	ReplyErr error
}

func (m *MockMessengerClient) Reply(channelID, content string) error {
	m.Channels = append(m.Channels, channelID)
	m.Replies = append(m.Replies, content)
	return m.ReplyErr
}

func (m *MockMessengerClient) RespondInteraction(interaction *discordgo.Interaction, content string) error {
	m.Interactions = append(m.Interactions, content)
	return nil
}

func (m *MockMessengerClient) React(channelID, messageID, emoji string) error {
	m.Reactions = append(m.Reactions, emoji)
	return nil
}
