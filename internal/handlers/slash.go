package handlers

import (
	"context"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// SlashCommands describes the application commands the bot registers.
func SlashCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "add",
			Description: "Add a new expense",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "item",
					Description: "The item name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "amount",
					Description: "The amount in rupees",
					Required:    true,
				},
			},
		},
		{Name: "total", Description: "Show total expenses"},
		{Name: "list", Description: "List recent expenses"},
	}
}

// HandleInteractionCreate is the structured entry path. Options arrive
// already separated, so no tokenization happens; the command still flows
// through the same dispatch as the legacy path so replies render identically.
func (d *Dependencies) HandleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	d.handleInteraction(context.Background(), i.Interaction)
}

func (d *Dependencies) handleInteraction(ctx context.Context, interaction *discordgo.Interaction) {
	data := interaction.ApplicationCommandData()

	var cmd Command
	switch data.Name {
	case "add":
		cmd = Command{Kind: CommandAdd}
		for _, opt := range data.Options {
			switch opt.Name {
			case "item":
				cmd.Item = opt.StringValue()
			case "amount":
				cmd.AmountText = strconv.FormatFloat(opt.FloatValue(), 'f', -1, 64)
			}
		}
	case "total":
		cmd = Command{Kind: CommandTotal}
	case "list":
		cmd = Command{Kind: CommandList}
	default:
		return
	}

	reply, ok, _ := d.Dispatch(ctx, cmd)
	if !ok {
		return
	}
	if err := d.Messenger.RespondInteraction(interaction, reply); err != nil {
		log.Error().Err(err).Str("command", data.Name).Msg("failed to respond to interaction")
	}
}
