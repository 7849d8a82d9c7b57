package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

const pushJobName = "command_registrar"

// Registry holds only this program's metrics, without runtime collectors.
var Registry = prometheus.NewRegistry()

var (
	DiscordRequestDuration = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "discord_api_request_duration_seconds",
		Help:    "Duration of Discord API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	DiscordRequests = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "discord_api_requests_total",
		Help: "Total number of Discord API requests",
	}, []string{"endpoint", "status"})

	CommandRegistrations = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "command_registrations_total",
		Help: "Guild command registration attempts by outcome",
	}, []string{"command", "outcome"})
)

// Registration outcomes.
const (
	OutcomeRegistered = "registered"
	OutcomeRejected   = "rejected"
	OutcomeError      = "error"
)

// Push sends the current values to a Pushgateway.
func Push(ctx context.Context, gatewayURL string) error {
	err := push.New(gatewayURL, pushJobName).
		Gatherer(Registry).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
