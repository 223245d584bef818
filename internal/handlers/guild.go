package handlers

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

const greeting = "👋 Hello! I'm your expense tracker. Use `/add`, `/total`, and `/list` to manage your expenses!"

// HandleGuildCreate greets the system channel when the bot joins a guild.
// Discord replays GuildCreate for every known guild on connect, so only a
// recent join gets the greeting.
func (d *Dependencies) HandleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if g.Guild == nil || g.SystemChannelID == "" {
		return
	}
	if time.Since(g.JoinedAt) > time.Minute {
		return
	}

	log.Info().Str("guild", g.Name).Msg("joined new guild")
	d.send(g.SystemChannelID, greeting)
}
