package listapi

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/swiftsoftwaregroup/talis-list-client-go/internal/logging"
)

// DefaultBaseURL is the EU reading-list API.
const DefaultBaseURL = "https://rl.talis.com"

// TokenSource supplies the bearer token for each request.
// *oauth2client.TokenProvider implements it.
type TokenSource interface {
	Token() string
}

// Client makes authenticated calls to the reading-list API on behalf of an
// effective user within one tenant.
type Client struct {
	tokens        TokenSource
	tenant        string
	effectiveUser string
	baseURL       string
	httpClient    *http.Client
	logger        logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL, e.g. for the Canadian region.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client for a tenant, acting as an effective user.
//
// Parameters:
//   - tokens: Supplies the bearer token. It is read on every request, so it
//     may still be empty when the client is built.
//   - tenant: The tenant short code, e.g. "broadminster".
//   - effectiveUser: The user the API evaluates calls as, sent in
//     X-Effective-User.
//   - opts: Optional settings such as WithBaseURL, WithHTTPClient and WithLogger.
//
// Returns:
//   - *Client: A new reading-list client.
//
// Example:
//
//	provider := oauth2client.NewTokenProvider(config)
//	client := listapi.NewClient(provider, "broadminster", config.ClientID,
//		listapi.WithBaseURL("https://rl.ca.talis.com"))
func NewClient(tokens TokenSource, tenant, effectiveUser string, opts ...Option) *Client {
	c := &Client{
		tokens:        tokens,
		tenant:        tenant,
		effectiveUser: effectiveUser,
		baseURL:       DefaultBaseURL,
		httpClient:    http.DefaultClient,
		logger:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultHeaders returns the headers added to every request.
func (c *Client) DefaultHeaders() map[string]string {
	return map[string]string{
		"Accept":           "application/json",
		"X-Effective-User": c.effectiveUser,
		"Authorization":    "Bearer " + c.tokens.Token(),
	}
}

// ListURL returns the URL of the get list route for listID.
func (c *Client) ListURL(listID string) string {
	return fmt.Sprintf("%s/3/%s/lists/%s", c.baseURL, url.PathEscape(c.tenant), url.PathEscape(listID))
}

// GetList implements the get list route,
// https://rl.talis.com/3/docs#operation/getList.
//
// Parameters:
//   - ctx: Context for the request.
//   - listID: The list GUID.
//
// Returns:
//   - *ListResource: The decoded list.
//   - error: A *FetchError wrapping the cause: the transport error, a
//     *StatusError for non-200 responses, ErrUnexpectedShape, or a JSON
//     decoding error.
//
// Example:
//
//	l, err := client.GetList(ctx, "abc123")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(l.Data.Attributes.Title)
func (c *Client) GetList(ctx context.Context, listID string) (*ListResource, error) {
	u := c.ListURL(listID)

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, &FetchError{ListID: listID, URL: u, Err: err}
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &FetchError{ListID: listID, URL: u, Err: fmt.Errorf("failed to unmarshal json response: %w", err)}
	}

	l, err := decodeListResource(raw)
	if err != nil {
		return nil, &FetchError{ListID: listID, URL: u, Err: err}
	}
	return l, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	c.logger.Debug("GET", "url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Could not make request", "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	var reader io.ReadCloser
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
	default:
		reader = resp.Body
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Unexpected response status", "url", u, "status", resp.Status)
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: body}
	}

	return body, nil
}
