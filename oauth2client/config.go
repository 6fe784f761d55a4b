package oauth2client

import (
	"net/http"

	"github.com/swiftsoftwaregroup/talis-list-client-go/internal/logging"
)

// OAuth2Config holds the configuration for OAuth2 authentication.
type OAuth2Config struct {
	// TokenURL is the URL of the token endpoint.
	TokenURL string

	// ClientID is the application's ID.
	ClientID string

	// ClientSecret is the application's secret.
	ClientSecret string

	// Scopes is a list of requested permission scopes. Talis does not
	// require any for client-credentials tokens.
	Scopes []string
}

// Option configures a TokenProvider.
type Option func(*TokenProvider)

// WithHTTPClient sets the client used to call the token endpoint.
func WithHTTPClient(c *http.Client) Option {
	return func(tp *TokenProvider) {
		if c != nil {
			tp.httpClient = c
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(tp *TokenProvider) {
		if l != nil {
			tp.logger = l
		}
	}
}
