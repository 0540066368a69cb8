package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/exec", c.EndpointURL)
	assert.Equal(t, "https://account.example.com", c.OriginURL)
	assert.Empty(t, c.CookieDomain)
	assert.Equal(t, 30*24*time.Hour, c.SessionCookieTTL)
	assert.Equal(t, 365*24*time.Hour, c.ThemeCookieTTL)
	assert.Equal(t, BackendSQLite, c.StoreBackend)
	assert.Equal(t, time.Duration(0), c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080/exec", cfg.EndpointURL)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionCookieTTL)
}

func TestResolveCookieDomain(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    string
		wantErr bool
	}{
		{name: "explicit wins", cfg: Config{CookieDomain: "shop.example.com", OriginURL: "https://a.shop.example.com"}, want: "shop.example.com"},
		{name: "derived from origin", cfg: Config{OriginURL: "https://auth.am-beauty.co.uk/login"}, want: "am-beauty.co.uk"},
		{name: "origin is the apex", cfg: Config{OriginURL: "https://example.com"}, want: "example.com"},
		{name: "plain http origin", cfg: Config{OriginURL: "http://auth.example.com"}, wantErr: true},
		{name: "public suffix only", cfg: Config{OriginURL: "https://co.uk"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.ResolveCookieDomain()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		var c Config
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty endpoint", mutate: func(c *Config) { c.EndpointURL = "" }},
		{name: "insecure origin", mutate: func(c *Config) { c.OriginURL = "http://account.example.com" }},
		{name: "unknown backend", mutate: func(c *Config) { c.StoreBackend = "redis" }},
		{name: "empty store path", mutate: func(c *Config) { c.StorePath = "" }},
		{name: "negative timeout", mutate: func(c *Config) { c.RequestTimeout = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}

	c := base()
	c.StoreBackend = BackendBolt
	assert.NoError(t, c.Validate())
}
