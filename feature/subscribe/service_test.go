package subscribe

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// upstream is a fake provider recording every request it receives.
type upstream struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   map[string]any
}

func newUpstream(t *testing.T, status int, body string) *upstream {
	t.Helper()
	u := &upstream{status: status, body: body}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		_ = json.Unmarshal(raw, &decoded)

		u.mu.Lock()
		u.requests = append(u.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   decoded,
		})
		u.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(u.status)
		_, _ = io.WriteString(w, u.body)
	}))
	t.Cleanup(u.Close)
	return u
}

func (u *upstream) recorded() []recordedRequest {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]recordedRequest(nil), u.requests...)
}

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:          baseURL,
		PublicationID:    "pub_test",
		UTMSource:        "self-mastery-vault",
		SendWelcomeEmail: true,
		SuccessRedirect:  "/success.html",
		TimeoutSeconds:   5,
	}
}

func newTestService(cfg Config, creds *Credentials) *Service {
	return NewService(NewClient(cfg), creds, cfg, zap.NewNop())
}

func TestConfig_SubscriptionsURL(t *testing.T) {
	cfg := Config{BaseURL: "https://api.beehiiv.com/", PublicationID: "pub_123"}
	assert.Equal(t, "https://api.beehiiv.com/v2/publications/pub_123/subscriptions", cfg.SubscriptionsURL())
}

func TestService_Subscribe(t *testing.T) {
	up := newUpstream(t, http.StatusCreated, `{"data":{"id":"sub_1"}}`)
	svc := newTestService(testConfig(up.URL), NewCredentials("secret", "", nil))

	err := svc.Subscribe(context.Background(), Request{Email: "a@b.com", FirstName: "Jo"})
	require.NoError(t, err)

	reqs := up.recorded()
	require.Len(t, reqs, 1)
	got := reqs[0]
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/v2/publications/pub_test/subscriptions", got.Path)
	assert.Equal(t, "Bearer secret", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, map[string]any{
		"email":              "a@b.com",
		"send_welcome_email": true,
		"utm_source":         "self-mastery-vault",
		"first_name":         "Jo",
	}, got.Body)
}

func TestService_SubscribeOmitsEmptyFirstName(t *testing.T) {
	up := newUpstream(t, http.StatusOK, `{}`)
	svc := newTestService(testConfig(up.URL), NewCredentials("secret", "", nil))

	require.NoError(t, svc.Subscribe(context.Background(), Request{Email: "a@b.com"}))

	reqs := up.recorded()
	require.Len(t, reqs, 1)
	assert.NotContains(t, reqs[0].Body, "first_name")
}

func TestService_SubscribeRejected(t *testing.T) {
	up := newUpstream(t, http.StatusBadRequest, `{"message":"Invalid email"}`)
	svc := newTestService(testConfig(up.URL), NewCredentials("secret", "", nil))

	err := svc.Subscribe(context.Background(), Request{Email: "nope"})

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusBadRequest, upErr.StatusCode)
	assert.Equal(t, "Invalid email", upErr.Message)
	assert.Len(t, up.recorded(), 1, "no retries")
}

func TestService_SubscribeCredentialMissing(t *testing.T) {
	up := newUpstream(t, http.StatusOK, `{}`)
	svc := newTestService(testConfig(up.URL), NewCredentials("", "", nil))

	err := svc.Subscribe(context.Background(), Request{Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrCredentialMissing)
	assert.Empty(t, up.recorded())
}

func TestService_SubscribeRequiresEmail(t *testing.T) {
	svc := newTestService(testConfig("http://127.0.0.1:1"), NewCredentials("secret", "", nil))
	assert.ErrorIs(t, svc.Subscribe(context.Background(), Request{}), ErrEmailRequired)
}

func TestUpstreamMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"Message", `{"message":"Invalid email"}`, "Invalid email"},
		{"ErrorsArray", `{"errors":[{"message":"Publication not found"}]}`, "Publication not found"},
		{"MessageWins", `{"message":"a","errors":[{"message":"b"}]}`, "a"},
		{"EmptyObject", `{}`, fallbackUpstreamMessage},
		{"NotJSON", `<html>bad gateway</html>`, fallbackUpstreamMessage},
		{"Empty", ``, fallbackUpstreamMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, upstreamMessage([]byte(tt.body)))
		})
	}
}
