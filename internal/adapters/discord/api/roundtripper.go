package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"test-entitlement-bot/internal/adapters/metrics"
)

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
		status = strconv.Itoa(resp.StatusCode)
	}

	endpoint := endpointLabel(req)
	metrics.DiscordAPIRequestDuration.WithLabelValues(endpoint, status).Observe(duration)
	metrics.DiscordAPIRequests.WithLabelValues(endpoint, status).Inc()

	return resp, err
}

func endpointLabel(req *http.Request) string {
	if !strings.Contains(req.URL.Path, "/entitlements") {
		return "unknown"
	}
	switch req.Method {
	case http.MethodPost:
		return "entitlement_create"
	case http.MethodDelete:
		return "entitlement_delete"
	default:
		return "unknown"
	}
}

// newTransport returns a transport that opens a fresh connection for every
// request and closes it once the response body is closed.
func newTransport() http.RoundTripper {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DisableKeepAlives = true
	return t
}
