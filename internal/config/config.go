package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// ListMode selects how the list command renders records.
type ListMode string

const (
	// ListModeLastFive shows only the five most recent records.
	ListModeLastFive ListMode = "last5"
	// ListModeAll shows every record.
	ListModeAll ListMode = "all"
)

// Config holds the bot configuration.
type Config struct {
	DiscordToken    string
	SpreadsheetID   string
	CredentialsFile string
	SheetName       string
	CommandPrefix   string
	CurrencySymbol  string
	ListMode        ListMode
}

// Load reads configuration from the environment, with a .env file fallback.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on system env variables")
	}

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN environment variable is required")
	}

	spreadsheetID := os.Getenv("SPREADSHEET_ID")
	if spreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID environment variable is required")
	}

	mode := ListMode(getEnv("LIST_MODE", string(ListModeLastFive)))
	switch mode {
	case ListModeLastFive, ListModeAll:
	default:
		return nil, fmt.Errorf("invalid LIST_MODE %q: must be %q or %q", mode, ListModeLastFive, ListModeAll)
	}

	return &Config{
		DiscordToken:    token,
		SpreadsheetID:   spreadsheetID,
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "./credentials.json"),
		SheetName:       getEnv("SHEET_NAME", "Sheet1"),
		CommandPrefix:   getEnv("COMMAND_PREFIX", "/"),
		CurrencySymbol:  getEnv("CURRENCY_SYMBOL", "₹"),
		ListMode:        mode,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
