// Package forwarder provides the HTTP client for the downstream customer lead API.
package forwarder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"solar_lead_backend/internal/leads/domain"
	"solar_lead_backend/platform/apperr"
	"solar_lead_backend/platform/config"
	"solar_lead_backend/platform/logger"
)

const maxResponseBytes = 1 << 20

// Client posts accepted leads to the customer API.
type Client struct {
	httpClient *http.Client
	url        string
	token      string
	log        *logger.Logger
}

// New creates a customer API client from config.
func New(cfg config.CustomerAPIConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetCustomerAPITimeout()},
		url:        cfg.GetCustomerAPIURL(),
		token:      cfg.GetCustomerAPIToken(),
		log:        log,
	}
}

// NewWithHTTPClient creates a client against an explicit URL and transport.
func NewWithHTTPClient(httpClient *http.Client, url, token string, log *logger.Logger) *Client {
	return &Client{httpClient: httpClient, url: url, token: token, log: log}
}

// Forward sends the payload once and returns the upstream body as JSON.
// Non-2xx answers return an *apperr.Error of kind KindUpstream with the body as details.
func (c *Client) Forward(ctx context.Context, payload domain.DownstreamPayload) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log := c.log.WithContext(ctx)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("customer api request failed", "error", err)
		return nil, apperr.Unavailable("customer api request failed", err).WithOp("forward lead")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperr.Unavailable("read customer api response", err).WithOp("forward lead")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamErr := apperr.Upstream(resp.StatusCode, fmt.Sprintf("Request failed with status code %d", resp.StatusCode)).
			WithDetails(asJSON(respBody))
		log.UpstreamError("customer_api", resp.StatusCode, upstreamErr, string(respBody))
		return nil, upstreamErr
	}

	log.Debug("customer api accepted lead", "status", resp.StatusCode, "latency_ms", time.Since(start).Milliseconds())
	return asJSON(respBody), nil
}

// asJSON returns body unchanged when it is valid JSON, otherwise as a JSON string.
func asJSON(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
