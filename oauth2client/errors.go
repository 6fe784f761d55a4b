package oauth2client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingCredentials is returned when the client ID or secret is empty.
var ErrMissingCredentials = errors.New("client ID or secret are not set")

// TokenError describes a failed token request. StatusCode is set when the
// server answered; Code and Description only when that answer carried an
// OAuth2 error body.
type TokenError struct {
	StatusCode  int
	Code        string
	Description string
	Err         error
}

func (e *TokenError) Error() string {
	switch {
	case e.Code != "" && e.Description != "":
		return fmt.Sprintf("unable to get token: %d %s: %s", e.StatusCode, e.Code, e.Description)
	case e.Code != "":
		return fmt.Sprintf("unable to get token: %d %s", e.StatusCode, e.Code)
	case e.StatusCode != 0:
		return fmt.Sprintf("unable to get token: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("unable to get token: %v", e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}
