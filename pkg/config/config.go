package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// DatabaseURL carries end-user-level credentials; ServiceDatabaseURL
	// carries the elevated service credentials used for the role table and
	// defaults to DatabaseURL for local development.
	DatabaseURL        string `envconfig:"DATABASE_URL" required:"true"`
	ServiceDatabaseURL string `envconfig:"SERVICE_DATABASE_URL"`

	IdentityURL    string `envconfig:"IDENTITY_URL" required:"true"`
	IdentityAPIKey string `envconfig:"IDENTITY_API_KEY"`

	KafkaBrokers string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	FeedChannel  string `envconfig:"FEED_CHANNEL" default:"orders_feed"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.ServiceDatabaseURL == "" {
		cfg.ServiceDatabaseURL = cfg.DatabaseURL
	}
	return &cfg, nil
}
