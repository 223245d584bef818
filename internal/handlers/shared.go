package handlers

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ssk090/discord-sheet-bot/internal/config"
)

// Dependencies holds the collaborators required by the handlers.
type Dependencies struct {
	Ledger    LedgerClient
	Messenger MessengerClient
	Config    *config.Config

	// Now is the clock used for record timestamps; defaults to time.Now.
	Now func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// send delivers a reply to a channel. Send failures are logged, never
// propagated; the command itself already ran.
func (d *Dependencies) send(channelID, content string) {
	if err := d.Messenger.Reply(channelID, content); err != nil {
		log.Error().Err(err).Str("channel", channelID).Msg("failed to send reply")
	}
}
