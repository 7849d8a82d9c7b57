package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"command-registrar/internal/core/domain"
)

// Validation constants define acceptable bounds for configuration values
const (
	minRequestTimeout = 1 * time.Second
	maxRequestTimeout = 5 * time.Minute
)

// Validate checks required parameters first. If any is missing it returns a
// *domain.MissingArgumentError naming every missing flag and nothing else.
// Otherwise the remaining settings are checked and all failures are returned
// together using errors.Join.
//
// The token, application id and guild id are not format-checked: any
// non-empty value is forwarded as given.
func (c *Config) Validate() error {
	if err := c.validateRequired(); err != nil {
		return err
	}

	var errs []error

	if err := c.validateRequestTimeout(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateAPIBaseURL(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateLogLevel(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validatePushgatewayURL(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

func (c *Config) validateRequired() error {
	var missing []string

	if c.Token == "" {
		missing = append(missing, "-t/--token")
	}
	if c.AppID == "" {
		missing = append(missing, "-a/--appid")
	}
	if c.GuildID == "" {
		missing = append(missing, "-g/--guid")
	}

	if len(missing) > 0 {
		return &domain.MissingArgumentError{Flags: missing}
	}
	return nil
}

// validateRequestTimeout allows 0, which leaves the request without a deadline.
func (c *Config) validateRequestTimeout() error {
	if c.RequestTimeout == 0 {
		return nil
	}
	if c.RequestTimeout < minRequestTimeout || c.RequestTimeout > maxRequestTimeout {
		return fmt.Errorf(
			"REQUEST_TIMEOUT must be 0 or between %v and %v, got %v",
			minRequestTimeout, maxRequestTimeout, c.RequestTimeout,
		)
	}
	return nil
}

func (c *Config) validateAPIBaseURL() error {
	return validateHTTPURL("DISCORD_API_BASE_URL", c.APIBaseURL)
}

func (c *Config) validatePushgatewayURL() error {
	if c.PushgatewayURL == "" {
		return nil
	}
	return validateHTTPURL("PROMETHEUS_PUSHGATEWAY_URL", c.PushgatewayURL)
}

func (c *Config) validateLogLevel() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func validateHTTPURL(fieldName, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", fieldName, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", fieldName, raw)
	}
	return nil
}
