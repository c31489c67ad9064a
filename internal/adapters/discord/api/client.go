package api

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

	"test-entitlement-bot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

// DefaultBaseURL is the REST root used by discordgo, without the trailing slash.
var DefaultBaseURL = strings.TrimSuffix(discordgo.EndpointAPI, "/")

var userAgent = "DiscordBot (https://github.com/bwmarrin/discordgo, v" + discordgo.VERSION + ")"

type Client struct {
	httpClient    *http.Client
	baseURL       string
	token         string
	applicationID string
	skuID         string
	logger        *slog.Logger
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(token, applicationID, skuID string, opts ...Option) (*Client, error) {
	var missing []string
	if token == "" {
		missing = append(missing, "bot token")
	}
	if applicationID == "" {
		missing = append(missing, "application id")
	}
	if skuID == "" {
		missing = append(missing, "sku id")
	}
	if len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: NewMetricsRoundTripper(newTransport()),
		},
		baseURL:       DefaultBaseURL,
		token:         token,
		applicationID: applicationID,
		skuID:         skuID,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger.Debug("Entitlement client configured",
		"application_id", applicationID,
		"token", maskToken(token),
		"base_url", c.baseURL,
	)

	return c, nil
}

func (c *Client) CreateTestEntitlement(ctx context.Context, ownerID string, ownerType domain.OwnerType) (*domain.Entitlement, error) {
	const op = "create test entitlement"

	if ownerID == "" {
		return nil, ErrMissingOwnerID
	}
	if !ownerType.Valid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOwnerType, ownerType)
	}

	payload, err := json.Marshal(domain.EntitlementRequest{
		SkuID:     c.skuID,
		OwnerID:   ownerID,
		OwnerType: ownerType,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	status, body, err := c.do(ctx, http.MethodPost, c.entitlementsURL(), payload)
	if err != nil {
		return nil, &RemoteAPIError{Op: op, Err: err}
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return nil, &RemoteAPIError{Op: op, StatusCode: status, Body: string(body)}
	}

	ent, err := decodeEntitlement(body)
	if err != nil {
		return nil, &RemoteAPIError{
			Op:         op,
			StatusCode: status,
			Body:       string(body),
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	return ent, nil
}

func (c *Client) DeleteTestEntitlement(ctx context.Context, entitlementID string) error {
	const op = "delete test entitlement"

	if entitlementID == "" {
		return ErrMissingEntitlementID
	}

	u := c.entitlementsURL() + "/" + url.PathEscape(entitlementID)
	status, body, err := c.do(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return &RemoteAPIError{Op: op, Err: err}
	}

	if status != http.StatusNoContent {
		return &RemoteAPIError{Op: op, StatusCode: status, Body: string(body)}
	}

	c.logger.Debug("Test entitlement deleted", "entitlement_id", entitlementID)
	return nil
}

func (c *Client) entitlementsURL() string {
	return fmt.Sprintf("%s/applications/%s/entitlements", c.baseURL, url.PathEscape(c.applicationID))
}

// do sends one request and returns the status code with the fully read body.
func (c *Client) do(ctx context.Context, method, u string, payload []byte) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("Discord API response",
		"method", method,
		"url", u,
		"request_body", string(payload),
		"status", resp.StatusCode,
		"response_body", string(body),
	)

	return resp.StatusCode, body, nil
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
