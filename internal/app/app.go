// Package app wires the token provider and the reading-list client into the
// get-list-title runs.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/swiftsoftwaregroup/talis-list-client-go/internal/config"
	"github.com/swiftsoftwaregroup/talis-list-client-go/internal/logging"
	"github.com/swiftsoftwaregroup/talis-list-client-go/listapi"
	"github.com/swiftsoftwaregroup/talis-list-client-go/oauth2client"
)

// newListClient fetches a token and returns a client using it, along with the
// token error if the fetch failed. The run carries on without a token in that
// case; callers join the token error onto any API error that follows.
func newListClient(ctx context.Context, cfg *config.Config, logger logging.Logger, hc *http.Client) (*listapi.Client, error) {
	provider := oauth2client.NewTokenProvider(oauth2client.OAuth2Config{
		TokenURL:     cfg.TokenURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
	}, oauth2client.WithHTTPClient(hc), oauth2client.WithLogger(logger))

	_, tokenErr := provider.FetchToken(ctx)

	c := listapi.NewClient(provider, cfg.Tenant, cfg.EffectiveUser,
		listapi.WithBaseURL(cfg.APIBaseURL),
		listapi.WithHTTPClient(hc),
		listapi.WithLogger(logger),
	)
	return c, tokenErr
}

// withTokenErr joins tokenErr onto err so a rejected call reports why there
// was no token.
func withTokenErr(err, tokenErr error) error {
	if tokenErr == nil {
		return err
	}
	return errors.Join(err, tokenErr)
}

// Run fetches cfg.ListID and logs its title and last published date.
func Run(ctx context.Context, cfg *config.Config, logger logging.Logger, hc *http.Client) error {
	c, tokenErr := newListClient(ctx, cfg, logger, hc)

	l, err := c.GetList(ctx, cfg.ListID)
	if err != nil {
		return withTokenErr(err, tokenErr)
	}

	logger.Debug(fmt.Sprintf("%v", l.Raw))

	logger.Info(fmt.Sprintf("Title: %s", l.Data.Attributes.Title))
	logger.Info(fmt.Sprintf("Last Published: %s", l.Data.Attributes.LastPublished))

	return nil
}
