package subscribe

import (
	"net/url"
	"strings"
	"time"
)

// Config holds configuration for the newsletter provider.
type Config struct {
	// BaseURL is the root of the provider's REST API.
	BaseURL string `mapstructure:"base_url" default:"https://api.beehiiv.com"`
	// PublicationID identifies the publication subscribers are added to.
	PublicationID string `mapstructure:"publication_id" default:"pub_c9b8177c-2f58-4851-aef6-6cceae9f3743" env:"BEEHIIV_PUBLICATION_ID"`
	// APIKey is the bearer token. When empty, APIKeyFile is read instead.
	APIKey string `mapstructure:"api_key" default:"" env:"BEEHIIV_API_KEY"`
	// APIKeyFile is a local file holding the bearer token. Keep it out of version control.
	APIKeyFile string `mapstructure:"api_key_file" default:"api_key_beehiv"`
	// UTMSource is the attribution tag sent with every subscription.
	UTMSource string `mapstructure:"utm_source" default:"self-mastery-vault"`
	// SendWelcomeEmail asks the provider to send its welcome email.
	SendWelcomeEmail bool `mapstructure:"send_welcome_email" default:"true"`
	// SuccessRedirect is where the browser is sent after a successful subscription.
	SuccessRedirect string `mapstructure:"success_redirect" default:"/success.html"`
	// TimeoutSeconds bounds the outbound call. Zero disables the timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// SubscriptionsURL returns the provider endpoint that creates subscriptions.
func (c Config) SubscriptionsURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/v2/publications/" + url.PathEscape(c.PublicationID) + "/subscriptions"
}

// Timeout returns the outbound call timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
