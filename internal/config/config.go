// Package config resolves credentials, region endpoints and command line
// settings for the reading-list tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by CredentialsFromEnv and FlagSet.Load.
const (
	// EnvClientID holds the Persona client ID. It is also the default
	// effective user.
	EnvClientID = "ACTIVE_TALIS_PERSONA_ID"

	// EnvClientSecret holds the Persona client secret.
	EnvClientSecret = "ACTIVE_TALIS_PERSONA_SECRET"

	// EnvRegion selects the region when --region is not given.
	EnvRegion = "TALIS_REGION"
)

// Region selects which Talis deployment the tools talk to.
type Region string

// Supported regions.
const (
	// RegionEU is the default deployment, users.talis.com and rl.talis.com.
	RegionEU Region = "eu"

	// RegionCA is the Canadian deployment, users.ca.talis.com and rl.ca.talis.com.
	RegionCA Region = "ca"
)

// Endpoints are the base URLs of one regional deployment.
type Endpoints struct {
	// TokenURL is the Persona token endpoint.
	TokenURL string

	// APIBaseURL is the reading-list API root, without the /3 version prefix.
	APIBaseURL string
}

var regionEndpoints = map[Region]Endpoints{
	RegionEU: {
		TokenURL:   "https://users.talis.com/oauth/tokens",
		APIBaseURL: "https://rl.talis.com",
	},
	RegionCA: {
		TokenURL:   "https://users.ca.talis.com/oauth/tokens",
		APIBaseURL: "https://rl.ca.talis.com",
	},
}

// ParseRegion maps a region name to a Region. An empty name is RegionEU.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToLower(strings.TrimSpace(s)))
	if r == "" {
		return RegionEU, nil
	}
	if _, ok := regionEndpoints[r]; !ok {
		return "", fmt.Errorf("unknown region %q", s)
	}
	return r, nil
}

// Endpoints returns the endpoints for r.
func (r Region) Endpoints() (Endpoints, error) {
	e, ok := regionEndpoints[r]
	if !ok {
		return Endpoints{}, fmt.Errorf("unknown region %q", string(r))
	}
	return e, nil
}

// Credentials are the Persona client credentials.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// CredentialsFromEnv reads the Persona credentials using getenv.
func CredentialsFromEnv(getenv func(string) string) Credentials {
	return Credentials{
		ClientID:     getenv(EnvClientID),
		ClientSecret: getenv(EnvClientSecret),
	}
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding ones already set. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	var existing []string
	for _, f := range filenames {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// Config holds everything a run needs.
type Config struct {
	Credentials

	// EffectiveUser is sent as X-Effective-User. Defaults to the client ID.
	EffectiveUser string

	Tenant string
	ListID string
	Region Region

	// Resolved from Region unless set explicitly.
	TokenURL   string
	APIBaseURL string

	// CSV batch mode.
	InFile  string
	OutFile string

	LogDir string
	Debug  bool
}

// Batch reports whether the run reads list IDs from a CSV file.
func (c *Config) Batch() bool {
	return c.InFile != ""
}

// Resolve fills in defaults derived from other fields.
func (c *Config) Resolve() error {
	if c.Region == "" {
		c.Region = RegionEU
	}

	e, err := c.Region.Endpoints()
	if err != nil {
		return err
	}
	if c.TokenURL == "" {
		c.TokenURL = e.TokenURL
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = e.APIBaseURL
	}

	if c.EffectiveUser == "" {
		c.EffectiveUser = c.ClientID
	}
	if c.LogDir == "" {
		c.LogDir = "."
	}
	return nil
}

// Validate checks the settings a run cannot do without. Missing
// credentials are not checked here; the token provider reports them.
func (c *Config) Validate() error {
	if c.Tenant == "" {
		return errors.New("tenant is missing")
	}

	if c.Batch() {
		if c.OutFile == "" {
			return errors.New("outfile is missing")
		}
		return nil
	}

	if c.ListID == "" {
		return errors.New("list id is missing")
	}

	return nil
}
