// Package oauth2client obtains access tokens for the Talis APIs using the
// OAuth2 client-credentials grant.
//
// Construction does no I/O. The token is fetched once, explicitly:
//
//	config := oauth2client.OAuth2Config{
//		TokenURL:     "https://users.talis.com/oauth/tokens",
//		ClientID:     os.Getenv("ACTIVE_TALIS_PERSONA_ID"),
//		ClientSecret: os.Getenv("ACTIVE_TALIS_PERSONA_SECRET"),
//	}
//	provider := oauth2client.NewTokenProvider(config, oauth2client.WithLogger(logger))
//	if _, err := provider.FetchToken(ctx); err != nil {
//		// the token stays empty
//	}
//	token := provider.Token()
//
// Tokens are not refreshed. A process that outlives its token has to build
// a new provider.
package oauth2client
