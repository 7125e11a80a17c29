package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the bot's runtime configuration, read from the environment
type Config struct {
	// Redis connection
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379" validate:"required,hostname_port"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0" validate:"gte=0,lte=15"`

	// Discord application
	DiscordToken  string `env:"DISCORD_TOKEN" validate:"required"`
	ApplicationID string `env:"APPLICATION_ID" validate:"required"`

	// GuildID registers commands to one guild; empty registers them globally
	GuildID string `env:"GUILD_ID"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`

	// Game night limits
	GuestPollInterval time.Duration `env:"GUEST_POLL_INTERVAL" envDefault:"15s" validate:"gte=1s"`
	MaxParticipants   int           `env:"MAX_PARTICIPANTS" envDefault:"12" validate:"gte=1,lte=99"`
}

// Load reads an optional .env file, then the environment, and validates the result.
// Variables already set in the environment take precedence over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
