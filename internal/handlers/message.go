package handlers

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// HandleMessageCreate is the legacy free-text entry path. Messages that do
// not start with a recognized verb are ignored without a reply.
func (d *Dependencies) HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s.State != nil && s.State.User != nil && m.Author != nil && m.Author.ID == s.State.User.ID {
		return
	}
	d.handleMessage(context.Background(), m)
}

// handleMessage is split from HandleMessageCreate so tests can drive it
// without a live session.
func (d *Dependencies) handleMessage(ctx context.Context, m *discordgo.MessageCreate) {
	cmd, err := ParseCommand(m.Content, d.Config.CommandPrefix)
	if err != nil {
		d.send(m.ChannelID, d.errorReply(cmd.Kind.String(), err))
		return
	}

	reply, ok, err := d.Dispatch(ctx, cmd)
	if !ok {
		return
	}
	d.send(m.ChannelID, reply)

	if cmd.Kind == CommandAdd && err == nil {
		if err := d.Messenger.React(m.ChannelID, m.ID, "✅"); err != nil {
			log.Warn().Err(err).Str("message", m.ID).Msg("failed to add reaction")
		}
	}
}
