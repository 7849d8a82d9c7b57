package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"command-registrar/internal/adapters/metrics"
	"command-registrar/internal/config"
	"command-registrar/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

// UserAgent follows the format Discord asks bots to send.
var UserAgent = "DiscordBot (https://github.com/bwmarrin/discordgo, v" + discordgo.VERSION + ")"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

type Option func(*Client)

// WithBaseURL points the client at another API root, e.g. an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Transport: NewMetricsRoundTripper(http.DefaultTransport),
		},
		baseURL: config.DefaultAPIBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GuildCommandsURL builds the guild command endpoint. Ids are path-escaped,
// which leaves snowflakes untouched.
func (c *Client) GuildCommandsURL(appID, guildID string) string {
	return fmt.Sprintf("%s/applications/%s/guilds/%s/commands", c.baseURL, url.PathEscape(appID), url.PathEscape(guildID))
}

// CreateGuildCommand posts cmd to the guild command endpoint. Any HTTP status
// is returned as a response; only transport and JSON failures are errors.
func (c *Client) CreateGuildCommand(ctx context.Context, token, appID, guildID string, cmd domain.CommandDefinition) (*domain.Response, error) {
	u := c.GuildCommandsURL(appID, guildID)

	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encode command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, &domain.NetworkError{URL: u, Err: err}
	}
	req.Header.Set("Authorization", "Bot "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	slog.Debug("Sending command registration", "url", u, "name", cmd.Name)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.CommandRegistrations.WithLabelValues(cmd.Name, metrics.OutcomeError).Inc()
		return nil, &domain.NetworkError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.CommandRegistrations.WithLabelValues(cmd.Name, metrics.OutcomeError).Inc()
		return nil, &domain.NetworkError{URL: u, Err: fmt.Errorf("read body: %w", err)}
	}

	slog.Debug("Received response", "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start))

	parsed, err := domain.ParseResponse(resp.StatusCode, body)
	if err != nil {
		metrics.CommandRegistrations.WithLabelValues(cmd.Name, metrics.OutcomeError).Inc()
		return nil, err
	}

	outcome := metrics.OutcomeRegistered
	if !parsed.Success() {
		outcome = metrics.OutcomeRejected
	}
	metrics.CommandRegistrations.WithLabelValues(cmd.Name, outcome).Inc()

	return parsed, nil
}

// -- Middleware --

type MetricsRoundTripper struct {
	Proxied http.RoundTripper
}

func NewMetricsRoundTripper(proxied http.RoundTripper) *MetricsRoundTripper {
	if proxied == nil {
		proxied = http.DefaultTransport
	}
	return &MetricsRoundTripper{Proxied: proxied}
}

func (mrt *MetricsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := mrt.Proxied.RoundTrip(req)
	duration := time.Since(start).Seconds()

	status := "error"
	if err == nil {
		status = fmt.Sprintf("%d", resp.StatusCode)
	}

	endpoint := endpointLabel(req.URL.Path)

	metrics.DiscordRequestDuration.WithLabelValues(endpoint, status).Observe(duration)
	metrics.DiscordRequests.WithLabelValues(endpoint, status).Inc()

	return resp, err
}

func endpointLabel(path string) string {
	switch {
	case strings.Contains(path, "/guilds/") && strings.HasSuffix(path, "/commands"):
		return "guild_commands"
	case strings.HasSuffix(path, "/commands"):
		return "global_commands"
	default:
		return "unknown"
	}
}
