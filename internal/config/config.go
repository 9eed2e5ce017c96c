// Package config loads bot settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the bot reads from the environment
type Config struct {
	// Discord bot token
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`

	// Application ID for the bot, falls back to the session user when empty
	ApplicationID string `env:"APPLICATION_ID"`

	// Optional guild ID for development (server-specific commands)
	GuildID string `env:"GUILD_ID"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Address the Prometheus metrics endpoint listens on, empty disables it
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`

	MaxDice   int `env:"MAX_DICE" envDefault:"50"`
	MaxSides  int `env:"MAX_SIDES" envDefault:"100"`
	MaxTrials int `env:"MAX_TRIALS" envDefault:"100000"`

	// How many queries are kept per channel and for how long
	HistorySize int           `env:"HISTORY_SIZE" envDefault:"100"`
	HistoryTTL  time.Duration `env:"HISTORY_TTL" envDefault:"720h"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
