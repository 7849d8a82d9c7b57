package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultAPIBaseURL = "https://discord.com/api/v10"

type Config struct {
	Token          string
	AppID          string
	GuildID        string
	APIBaseURL     string
	RequestTimeout time.Duration
	LogLevel       string
	LogJSON        bool
	PushgatewayURL string
}

// Flags holds values given on the command line. Empty means not given.
type Flags struct {
	Token   string
	AppID   string
	GuildID string
}

// Load takes the required parameters from flags only. The environment and an
// optional .env file supply the remaining settings.
func Load(flags Flags) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Token:          flags.Token,
		AppID:          flags.AppID,
		GuildID:        flags.GuildID,
		APIBaseURL:     strings.TrimRight(envString("DISCORD_API_BASE_URL", DefaultAPIBaseURL), "/"),
		RequestTimeout: envDuration("REQUEST_TIMEOUT", 0),
		LogLevel:       strings.ToLower(envString("LOG_LEVEL", "info")),
		LogJSON:        envBool("LOG_JSON", false),
		PushgatewayURL: envString("PROMETHEUS_PUSHGATEWAY_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
