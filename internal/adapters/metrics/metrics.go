package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DiscordAPIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "discord_api_request_duration_seconds",
		Help:    "Duration of Discord REST API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	DiscordAPIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discord_api_requests_total",
		Help: "Total number of Discord REST API requests",
	}, []string{"endpoint", "status"})

	EntitlementCommands = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "entitlement_commands_total",
		Help: "Total number of test entitlement commands handled",
	}, []string{"command", "result"})
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultInvalid = "invalid"
)
