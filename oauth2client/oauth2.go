package oauth2client

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/swiftsoftwaregroup/talis-list-client-go/internal/logging"
)

// TokenProvider acquires and holds a bearer token from the client-credentials
// grant. The token is fetched at most once per provider.
type TokenProvider struct {
	config     OAuth2Config
	httpClient *http.Client
	logger     logging.Logger

	mutex       sync.Mutex
	fetched     bool
	fetchErr    error
	accessToken string
}

// NewTokenProvider creates a TokenProvider for the given OAuth2 configuration.
// It does not contact the token endpoint; call FetchToken for that.
//
// Parameters:
//   - config: The token URL and client credentials.
//   - opts: Optional settings such as WithHTTPClient and WithLogger.
//
// Returns:
//   - *TokenProvider: A provider holding no token yet.
//
// Example:
//
//	provider := oauth2client.NewTokenProvider(oauth2client.OAuth2Config{
//		TokenURL:     "https://users.talis.com/oauth/tokens",
//		ClientID:     "your_client_id",
//		ClientSecret: "your_client_secret",
//	}, oauth2client.WithLogger(logger))
func NewTokenProvider(config OAuth2Config, opts ...Option) *TokenProvider {
	tp := &TokenProvider{
		config:     config,
		httpClient: http.DefaultClient,
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(tp)
	}
	return tp
}

// FetchToken requests an access token from the authorization server and
// stores it. Only the first call does any work; later calls return the
// result of the first one without contacting the server.
//
// Parameters:
//   - ctx: Context for the token request.
//
// Returns:
//   - string: The access token, or "" on failure.
//   - error: ErrMissingCredentials when the client ID or secret is unset,
//     a *TokenError when the request fails. The error is also logged and
//     the stored token stays empty.
//
// Example:
//
//	if _, err := provider.FetchToken(ctx); err != nil {
//		var tokenErr *oauth2client.TokenError
//		if errors.As(err, &tokenErr) {
//			log.Printf("token endpoint said %s", tokenErr.Code)
//		}
//	}
func (tp *TokenProvider) FetchToken(ctx context.Context) (string, error) {
	tp.mutex.Lock()
	defer tp.mutex.Unlock()

	if tp.fetched {
		return tp.accessToken, tp.fetchErr
	}
	tp.fetched = true

	tp.accessToken, tp.fetchErr = tp.requestToken(ctx)
	return tp.accessToken, tp.fetchErr
}

func (tp *TokenProvider) requestToken(ctx context.Context) (string, error) {
	if tp.config.ClientID == "" || tp.config.ClientSecret == "" {
		tp.logger.Error("Client ID or Secret are not set")
		return "", ErrMissingCredentials
	}

	tp.logger.Info("Trying to get token for API access")

	cc := clientcredentials.Config{
		ClientID:     tp.config.ClientID,
		ClientSecret: tp.config.ClientSecret,
		TokenURL:     tp.config.TokenURL,
		Scopes:       tp.config.Scopes,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	tok, err := cc.Token(context.WithValue(ctx, oauth2.HTTPClient, tp.httpClient))
	if err != nil {
		tokenErr := toTokenError(err)
		switch {
		case tokenErr.Code != "":
			tp.logger.Error("Unable to get token", "status", tokenErr.StatusCode, "error", tokenErr.Code, "description", tokenErr.Description)
		case tokenErr.StatusCode != 0:
			tp.logger.Error("Unable to get token", "status", tokenErr.StatusCode)
		default:
			tp.logger.Error("Unable to get token", "err", err)
		}
		return "", tokenErr
	}

	return tok.AccessToken, nil
}

// Token returns the stored access token, or "" if none was fetched.
func (tp *TokenProvider) Token() string {
	tp.mutex.Lock()
	defer tp.mutex.Unlock()

	return tp.accessToken
}

func toTokenError(err error) *TokenError {
	tokenErr := &TokenError{Err: err}

	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		tokenErr.Code = re.ErrorCode
		tokenErr.Description = re.ErrorDescription
		if re.Response != nil {
			tokenErr.StatusCode = re.Response.StatusCode
		}
	}
	return tokenErr
}
