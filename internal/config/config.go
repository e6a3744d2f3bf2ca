package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the account service configuration.
type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:":8080"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"accounts"`

	Token TokenConfig `envPrefix:"TOKEN_"`
}

// TokenConfig holds the session token signing configuration.
type TokenConfig struct {
	Issuer                string        `env:"ISSUER"             envDefault:"account-api"`
	AccessTokenSecret     string        `env:"ACCESS_SECRET"`
	RefreshTokenSecret    string        `env:"REFRESH_SECRET"`
	AccessTokenExpiresIn  time.Duration `env:"ACCESS_EXPIRES_IN"  envDefault:"15m"`
	RefreshTokenExpiresIn time.Duration `env:"REFRESH_EXPIRES_IN" envDefault:"720h"`
}

// NewConfig creates a Config instance from environment variables.
func NewConfig(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate service configuration")
	}

	return &cfg
}

// validate checks if the service configuration is valid.
func (c *Config) validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("missing MONGO_URI environment variable")
	}
	if c.Token.AccessTokenSecret == "" {
		return fmt.Errorf("missing TOKEN_ACCESS_SECRET environment variable")
	}
	if c.Token.RefreshTokenSecret == "" {
		return fmt.Errorf("missing TOKEN_REFRESH_SECRET environment variable")
	}

	return nil
}
