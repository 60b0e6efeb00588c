package subscribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Payload is the JSON body sent to the provider.
type Payload struct {
	Email            string `json:"email"`
	SendWelcomeEmail bool   `json:"send_welcome_email"`
	UTMSource        string `json:"utm_source"`
	FirstName        string `json:"first_name,omitempty"`
}

// UpstreamResult is the raw provider response.
type UpstreamResult struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the provider accepted the request.
func (r *UpstreamResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client posts subscriptions to the provider.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a provider client for the configured publication.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout()

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			// A 3xx is the provider's answer, not an instruction to re-send the key elsewhere.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		endpoint:   cfg.SubscriptionsURL(),
	}
}

// Subscribe issues exactly one POST. Non-2xx responses are not errors; the caller
// inspects the returned result.
func (c *Client) Subscribe(ctx context.Context, apiKey string, p Payload) (*UpstreamResult, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("subscription request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	return &UpstreamResult{StatusCode: resp.StatusCode, Body: respBody}, nil
}
