package services

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DiscordService wraps the Discord session and implements the messenger
// operations used by the handlers.
type DiscordService struct {
	session *discordgo.Session
}

// NewDiscordService creates a Discord session with the intents the legacy
// message path needs.
func NewDiscordService(token string) (*DiscordService, error) {
	if token == "" {
		return nil, fmt.Errorf("discord token is required")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	return &DiscordService{session: session}, nil
}

// Session exposes the underlying session for handler registration.
func (s *DiscordService) Session() *discordgo.Session {
	return s.session
}

// Open connects to the Discord gateway.
func (s *DiscordService) Open() error {
	if err := s.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	return nil
}

// Close shuts down the gateway connection.
func (s *DiscordService) Close() error {
	return s.session.Close()
}

// RegisterCommands syncs the application commands globally. Must run after
// Open, once the session knows its own user ID.
func (s *DiscordService) RegisterCommands(commands []*discordgo.ApplicationCommand) error {
	appID := s.session.State.User.ID
	for _, cmd := range commands {
		if _, err := s.session.ApplicationCommandCreate(appID, "", cmd); err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
	}
	return nil
}

// Reply sends a plain text message to a channel.
func (s *DiscordService) Reply(channelID, content string) error {
	_, err := s.session.ChannelMessageSend(channelID, content)
	return err
}

// RespondInteraction answers a slash-command invocation with a single text
// reply.
func (s *DiscordService) RespondInteraction(interaction *discordgo.Interaction, content string) error {
	return s.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

// React adds an emoji reaction to a message.
func (s *DiscordService) React(channelID, messageID, emoji string) error {
	return s.session.MessageReactionAdd(channelID, messageID, emoji)
}
