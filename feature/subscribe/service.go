package subscribe

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

const fallbackUpstreamMessage = "Failed to subscribe"

// UpstreamError is returned when the provider answers with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provider rejected subscription (%d): %s", e.StatusCode, e.Message)
}

// Service forwards subscription requests to the provider.
type Service struct {
	client *Client
	creds  *Credentials
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new subscription service.
func NewService(client *Client, creds *Credentials, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		creds:  creds,
		cfg:    cfg,
		logger: logger,
	}
}

// Subscribe forwards req once. It returns nil when the provider accepted it,
// an *UpstreamError when the provider rejected it, and a wrapped error otherwise.
func (s *Service) Subscribe(ctx context.Context, req Request) error {
	if req.Email == "" {
		return ErrEmailRequired
	}

	apiKey, err := s.creds.Resolve()
	if err != nil {
		return err
	}

	res, err := s.client.Subscribe(ctx, apiKey, s.payload(req))
	if err != nil {
		return err
	}

	if !res.OK() {
		return &UpstreamError{
			StatusCode: res.StatusCode,
			Message:    upstreamMessage(res.Body),
			Body:       res.Body,
		}
	}
	return nil
}

// SuccessRedirect returns the page browsers are sent to after subscribing.
func (s *Service) SuccessRedirect() string {
	return s.cfg.SuccessRedirect
}

func (s *Service) payload(req Request) Payload {
	return Payload{
		Email:            req.Email,
		SendWelcomeEmail: s.cfg.SendWelcomeEmail,
		UTMSource:        s.cfg.UTMSource,
		FirstName:        req.FirstName,
	}
}

// upstreamMessage extracts "message", then "errors[0].message", from a provider body.
func upstreamMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Errors  []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fallbackUpstreamMessage
	}
	if parsed.Message != "" {
		return parsed.Message
	}
	for _, e := range parsed.Errors {
		if e.Message != "" {
			return e.Message
		}
	}
	return fallbackUpstreamMessage
}
