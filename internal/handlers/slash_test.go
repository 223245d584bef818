package handlers

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssk090/discord-sheet-bot/internal/config"
	"github.com/ssk090/discord-sheet-bot/internal/models"
)

func newAddInteraction(item string, amount float64) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "add",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "item", Type: discordgo.ApplicationCommandOptionString, Value: item},
				{Name: "amount", Type: discordgo.ApplicationCommandOptionNumber, Value: amount},
			},
		},
	}
}

func newBareInteraction(name string) *discordgo.Interaction {
	return &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: name},
	}
}

func TestHandleInteraction_Add(t *testing.T) {
	deps, messenger := testDeps(&MockLedgerClient{}, config.ListModeLastFive)

	deps.handleInteraction(context.Background(), newAddInteraction("coffee", 12.5))

	require.Len(t, messenger.Interactions, 1)
	assert.Equal(t, "✅ Added: **coffee** – ₹12.50 on `2025-08-17 14:30:00`", messenger.Interactions[0])
}

func TestHandleInteraction_Total(t *testing.T) {
	ledger := &MockLedgerClient{}
	ledger.AmountColumnFunc = func(ctx context.Context) ([]string, error) {
		return []string{"10", "5"}, nil
	}
	deps, messenger := testDeps(ledger, config.ListModeLastFive)

	deps.handleInteraction(context.Background(), newBareInteraction("total"))

	require.Len(t, messenger.Interactions, 1)
	assert.Equal(t, "💰 Total Expenses: ₹15.00", messenger.Interactions[0])
}

func TestHandleInteraction_List(t *testing.T) {
	ledger := &MockLedgerClient{}
	ledger.AllRecordsFunc = func(ctx context.Context) ([]models.LedgerRow, error) {
		return []models.LedgerRow{{Expense: "chai", Amount: "10", Date: "2025-08-17 10:00:00"}}, nil
	}
	deps, messenger := testDeps(ledger, config.ListModeLastFive)

	deps.handleInteraction(context.Background(), newBareInteraction("list"))

	require.Len(t, messenger.Interactions, 1)
	assert.Equal(t, "🧾 Last 5 entries:\n📌 **chai** – ₹10 on 2025-08-17 10:00:00", messenger.Interactions[0])
}

// Both entry paths must render the same reply for the same expense.
func TestSlashAndLegacyPathsRenderIdentically(t *testing.T) {
	deps, messenger := testDeps(&MockLedgerClient{}, config.ListModeLastFive)

	deps.handleMessage(context.Background(), newMessage("/add chai latte 40"))
	deps.handleInteraction(context.Background(), newAddInteraction("chai latte", 40))

	require.Len(t, messenger.Replies, 1)
	require.Len(t, messenger.Interactions, 1)
	assert.Equal(t, messenger.Replies[0], messenger.Interactions[0])
}

func TestSlashCommands_Definitions(t *testing.T) {
	commands := SlashCommands()

	require.Len(t, commands, 3)
	assert.Equal(t, "add", commands[0].Name)
	require.Len(t, commands[0].Options, 2)
	assert.True(t, commands[0].Options[0].Required)
	assert.Equal(t, "total", commands[1].Name)
	assert.Equal(t, "list", commands[2].Name)
}
