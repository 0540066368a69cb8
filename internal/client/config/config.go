package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/repositories/cookies"
)

const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings for the session CLI.
//
// Fields:
//   - EndpointURL: the remote user-record store.
//   - OriginURL: the page origin the session lives on (must be https).
//   - CookieDomain: parent domain shared by sibling subdomains; derived
//     from OriginURL when empty.
//   - SessionCookieTTL, ThemeCookieTTL: cookie lifetimes.
//   - StoreBackend, StorePath: the page-persistent store (sqlite or bolt).
//   - RequestTimeout: per-call bound on remote calls; zero means none.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointURL      string
	OriginURL        string
	CookieDomain     string
	SessionCookieTTL time.Duration
	ThemeCookieTTL   time.Duration
	StoreBackend     string
	StorePath        string
	RequestTimeout   time.Duration
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EndpointURL = "http://127.0.0.1:8080/exec"
	c.OriginURL = "https://account.example.com"
	c.CookieDomain = ""
	c.SessionCookieTTL = 30 * 24 * time.Hour
	c.ThemeCookieTTL = 365 * 24 * time.Hour
	c.StoreBackend = BackendSQLite
	c.StorePath = "sessionkeeper.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Origin parses OriginURL.
func (c *Config) Origin() (*url.URL, error) {
	u, err := url.Parse(c.OriginURL)
	if err != nil {
		return nil, fmt.Errorf("%w: origin %q: %w", ErrInvalidConfig, c.OriginURL, err)
	}
	if u.Scheme != "https" || u.Hostname() == "" {
		return nil, fmt.Errorf("%w: origin %q must be an https URL", ErrInvalidConfig, c.OriginURL)
	}
	return u, nil
}

// ResolveCookieDomain returns CookieDomain, or the registrable parent of the
// origin host when it is empty.
func (c *Config) ResolveCookieDomain() (string, error) {
	if c.CookieDomain != "" {
		return c.CookieDomain, nil
	}
	origin, err := c.Origin()
	if err != nil {
		return "", err
	}
	d, err := cookies.ParentDomain(origin.Hostname())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return d, nil
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if c.EndpointURL == "" {
		return fmt.Errorf("%w: endpoint url is empty", ErrInvalidConfig)
	}
	if _, err := c.Origin(); err != nil {
		return err
	}
	switch c.StoreBackend {
	case BackendSQLite, BackendBolt:
	default:
		return fmt.Errorf("%w: unknown store backend %q", ErrInvalidConfig, c.StoreBackend)
	}
	if c.StorePath == "" {
		return fmt.Errorf("%w: store path is empty", ErrInvalidConfig)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidConfig)
	}
	return nil
}
