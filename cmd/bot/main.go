package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ssk090/discord-sheet-bot/internal/config"
	"github.com/ssk090/discord-sheet-bot/internal/handlers"
	"github.com/ssk090/discord-sheet-bot/internal/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ledger, err := services.NewSheetsService(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create sheets client")
	}

	discord, err := services.NewDiscordService(cfg.DiscordToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create discord session")
	}

	deps := &handlers.Dependencies{
		Ledger:    ledger,
		Messenger: discord,
		Config:    cfg,
	}

	session := discord.Session()
	session.AddHandler(deps.HandleMessageCreate)
	session.AddHandler(deps.HandleInteractionCreate)
	session.AddHandler(deps.HandleGuildCreate)
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		if err := discord.RegisterCommands(handlers.SlashCommands()); err != nil {
			log.Error().Err(err).Msg("failed to register slash commands")
			return
		}
		log.Info().Str("user", r.User.String()).Str("id", r.User.ID).Msg("✅ logged in")
	})

	if err := discord.Open(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to discord")
	}
	defer discord.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")
}
