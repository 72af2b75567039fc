package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"
)

// Store backends.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds the runtime settings. Every field reads VENUEBOOK_<NAME>
// first and falls back to the bare <NAME>.
type Config struct {
	Backend          string `envconfig:"STORE_BACKEND" default:"file"`
	EventsFile       string `envconfig:"EVENTS_FILE" default:"events.txt"`
	ParticipantsFile string `envconfig:"PARTICIPANTS_FILE" default:"participants.txt"`
	SQLitePath       string `envconfig:"SQLITE_PATH" default:"venuebook.db"`
	DatabaseURL      string `envconfig:"DATABASE_URL"`
	MigrationsPath   string `envconfig:"MIGRATIONS_PATH" default:"migrations/postgres"`
	RoomsFile        string `envconfig:"ROOMS_FILE"`
	Locale           string `envconfig:"LOCALE" default:"en"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	TicketsDir       string `envconfig:"TICKETS_DIR"`
	TimeZone         string `envconfig:"TIMEZONE" default:"Local"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment.
	}

	cfg := &Config{}
	if err := envconfig.Process("venuebook", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case BackendFile:
		if strings.TrimSpace(c.EventsFile) == "" || strings.TrimSpace(c.ParticipantsFile) == "" {
			return fmt.Errorf("config: EVENTS_FILE and PARTICIPANTS_FILE are required for the file backend")
		}
	case BackendSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("config: SQLITE_PATH is required for the sqlite backend")
		}
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the postgres backend")
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q (want file, sqlite or postgres)", c.Backend)
	}

	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: invalid LOCALE %q: %w", c.Locale, err)
	}
	return nil
}
