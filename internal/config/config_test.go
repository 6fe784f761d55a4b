package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("")
	require.NoError(t, err)
	assert.Equal(t, RegionEU, r)

	r, err = ParseRegion(" CA ")
	require.NoError(t, err)
	assert.Equal(t, RegionCA, r)

	_, err = ParseRegion("us")
	assert.EqualError(t, err, `unknown region "us"`)
}

func TestRegionEndpoints(t *testing.T) {
	e, err := RegionEU.Endpoints()
	require.NoError(t, err)
	assert.Equal(t, "https://users.talis.com/oauth/tokens", e.TokenURL)
	assert.Equal(t, "https://rl.talis.com", e.APIBaseURL)

	e, err = RegionCA.Endpoints()
	require.NoError(t, err)
	assert.Equal(t, "https://users.ca.talis.com/oauth/tokens", e.TokenURL)
	assert.Equal(t, "https://rl.ca.talis.com", e.APIBaseURL)

	_, err = Region("xx").Endpoints()
	assert.Error(t, err)
}

func TestFlagSetLoad(t *testing.T) {
	t.Run("short flags", func(t *testing.T) {
		var cfg Config
		fs := NewFlagSet("get-list-title", &cfg, io.Discard)
		err := fs.Load([]string{"-t", "demo", "-l", "abc123"}, env(map[string]string{
			EnvClientID:     "persona-id",
			EnvClientSecret: "persona-secret",
		}))
		require.NoError(t, err)

		assert.Equal(t, "demo", cfg.Tenant)
		assert.Equal(t, "abc123", cfg.ListID)
		assert.Equal(t, "persona-id", cfg.ClientID)
		assert.Equal(t, "persona-secret", cfg.ClientSecret)
		assert.Equal(t, "persona-id", cfg.EffectiveUser)
		assert.Equal(t, RegionEU, cfg.Region)
		assert.Equal(t, "https://users.talis.com/oauth/tokens", cfg.TokenURL)
		assert.Equal(t, "https://rl.talis.com", cfg.APIBaseURL)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("long flags and region from env", func(t *testing.T) {
		var cfg Config
		fs := NewFlagSet("get-list-title", &cfg, io.Discard)
		err := fs.Load([]string{"--tenant", "demo", "--list", "abc123"}, env(map[string]string{
			EnvRegion: "ca",
		}))
		require.NoError(t, err)

		assert.Equal(t, RegionCA, cfg.Region)
		assert.Equal(t, "https://rl.ca.talis.com", cfg.APIBaseURL)
	})

	t.Run("region flag wins over env", func(t *testing.T) {
		var cfg Config
		fs := NewFlagSet("get-list-title", &cfg, io.Discard)
		err := fs.Load([]string{"--region", "eu"}, env(map[string]string{EnvRegion: "ca"}))
		require.NoError(t, err)
		assert.Equal(t, RegionEU, cfg.Region)
	})

	t.Run("bad region", func(t *testing.T) {
		var cfg Config
		fs := NewFlagSet("get-list-title", &cfg, io.Discard)
		err := fs.Load([]string{"--region", "mars"}, env(nil))
		assert.Error(t, err)
	})

	t.Run("version", func(t *testing.T) {
		var cfg Config
		fs := NewFlagSet("get-list-title", &cfg, io.Discard)
		require.NoError(t, fs.Load([]string{"--version"}, env(nil)))
		assert.True(t, fs.Version)
	})

	t.Run("version ignores bad region", func(t *testing.T) {
		var cfg Config
		fs := NewFlagSet("get-list-title", &cfg, io.Discard)
		require.NoError(t, fs.Load([]string{"--version"}, env(map[string]string{EnvRegion: "mars"})))
		assert.True(t, fs.Version)
	})
}

func TestValidate(t *testing.T) {
	assert.EqualError(t, (&Config{}).Validate(), "tenant is missing")
	assert.EqualError(t, (&Config{Tenant: "demo"}).Validate(), "list id is missing")
	assert.EqualError(t, (&Config{Tenant: "demo", InFile: "in.csv"}).Validate(), "outfile is missing")
	assert.NoError(t, (&Config{Tenant: "demo", InFile: "in.csv", OutFile: "out.csv"}).Validate())
	assert.NoError(t, (&Config{Tenant: "demo", ListID: "abc123"}).Validate())
}

func TestResolveKeepsExplicitEndpoints(t *testing.T) {
	cfg := Config{
		Credentials:   Credentials{ClientID: "id"},
		EffectiveUser: "someone-else",
		TokenURL:      "http://127.0.0.1/token",
		APIBaseURL:    "http://127.0.0.1",
	}
	require.NoError(t, cfg.Resolve())

	assert.Equal(t, "http://127.0.0.1/token", cfg.TokenURL)
	assert.Equal(t, "http://127.0.0.1", cfg.APIBaseURL)
	assert.Equal(t, "someone-else", cfg.EffectiveUser)
	assert.Equal(t, ".", cfg.LogDir)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TALIS_TEST_DOTENV_VALUE=from-file\n"), 0o600))
	t.Setenv("TALIS_TEST_DOTENV_VALUE", "")
	os.Unsetenv("TALIS_TEST_DOTENV_VALUE")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("TALIS_TEST_DOTENV_VALUE"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
