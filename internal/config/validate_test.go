package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Token:          "tok",
		AppID:          "111",
		GuildID:        "222",
		APIBaseURL:     DefaultAPIBaseURL,
		RequestTimeout: 30 * time.Second,
		LogLevel:       "info",
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_RequiredChecksComeFirst(t *testing.T) {
	cfg := validConfig()
	cfg.Token = ""
	cfg.RequestTimeout = time.Hour

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "REQUEST_TIMEOUT") {
		t.Errorf("missing arguments should be reported alone, got %v", err)
	}
}

func TestValidate_ZeroTimeoutMeansNoDeadline(t *testing.T) {
	cfg := validConfig()
	cfg.RequestTimeout = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{"timeout too short", func(c *Config) { c.RequestTimeout = 500 * time.Millisecond }, "REQUEST_TIMEOUT must be 0 or between"},
		{"timeout too long", func(c *Config) { c.RequestTimeout = time.Hour }, "REQUEST_TIMEOUT must be 0 or between"},
		{"relative base url", func(c *Config) { c.APIBaseURL = "/api/v10" }, "DISCORD_API_BASE_URL must be an absolute"},
		{"ftp base url", func(c *Config) { c.APIBaseURL = "ftp://discord.com" }, "DISCORD_API_BASE_URL must be an absolute"},
		{"unparseable base url", func(c *Config) { c.APIBaseURL = "http://[::1" }, "DISCORD_API_BASE_URL is not a valid URL"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LOG_LEVEL must be one of"},
		{"bad pushgateway", func(c *Config) { c.PushgatewayURL = "pushgateway:9091" }, "PROMETHEUS_PUSHGATEWAY_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			assertContains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestValidate_JoinsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.RequestTimeout = -time.Second
	cfg.LogLevel = "loud"
	cfg.APIBaseURL = "nope"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}

	for _, want := range []string{"REQUEST_TIMEOUT", "LOG_LEVEL", "DISCORD_API_BASE_URL"} {
		assertContains(t, err.Error(), want)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"garbage", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.level}
			assertEqual(t, "level", tt.expected, cfg.Level())
		})
	}
}
