package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config aggregates every service setting. Values come from MOODLIFT_-prefixed
// environment variables; main loads a .env file first when one exists.
type Config struct {
	Server    ServerConfig
	Providers ProvidersConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string `envconfig:"ADDR" default:":8080"`
}

// ProvidersConfig describes the optional live content providers. An empty URL
// disables that provider and the static library serves the content type alone.
type ProvidersConfig struct {
	JokeURL  string `envconfig:"JOKE_URL" default:"https://icanhazdadjoke.com"`
	QuoteURL string `envconfig:"QUOTE_URL" default:"https://api.quotable.io"`
	ImageURL string `envconfig:"IMAGE_URL" default:"https://picsum.photos"`

	// Fetch budget: hard timeout plus a small retry ladder before falling
	// back to the static library.
	Timeout      time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"5s"`
	RetryCount   int           `envconfig:"PROVIDER_RETRIES" default:"2"`
	RetryWait    time.Duration `envconfig:"PROVIDER_RETRY_WAIT" default:"1s"`
	RetryMaxWait time.Duration `envconfig:"PROVIDER_RETRY_MAX_WAIT" default:"2s"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("moodlift", &cfg.Server); err != nil {
		return nil, fmt.Errorf("load server config: %w", err)
	}
	if err := envconfig.Process("moodlift", &cfg.Providers); err != nil {
		return nil, fmt.Errorf("load provider config: %w", err)
	}

	if cfg.Server.Addr != "" && !strings.Contains(cfg.Server.Addr, ":") {
		// Allow a bare port like "8080".
		cfg.Server.Addr = ":" + cfg.Server.Addr
	}
	return &cfg, nil
}

// JokesEnabled reports whether the live joke provider is configured.
func (c ProvidersConfig) JokesEnabled() bool { return strings.TrimSpace(c.JokeURL) != "" }

// QuotesEnabled reports whether the live quote provider is configured.
func (c ProvidersConfig) QuotesEnabled() bool { return strings.TrimSpace(c.QuoteURL) != "" }

// ImagesEnabled reports whether the live image provider is configured.
func (c ProvidersConfig) ImagesEnabled() bool { return strings.TrimSpace(c.ImageURL) != "" }
