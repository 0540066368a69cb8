package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sessionkeeper/internal/flagx"
	"github.com/dmitrijs2005/sessionkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Durations use timex.Duration so they may be written as "720h" or as
// integer nanoseconds.
type JsonConfig struct {
	EndpointURL      string         `json:"endpoint_url"`
	OriginURL        string         `json:"origin_url"`
	CookieDomain     string         `json:"cookie_domain"`
	SessionCookieTTL timex.Duration `json:"session_cookie_ttl"`
	ThemeCookieTTL   timex.Duration `json:"theme_cookie_ttl"`
	StoreBackend     string         `json:"store_backend"`
	StorePath        string         `json:"store_path"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Absent or zero fields keep their current value.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.EndpointURL, jc.EndpointURL)
	setString(&cfg.OriginURL, jc.OriginURL)
	setString(&cfg.CookieDomain, jc.CookieDomain)
	setString(&cfg.StoreBackend, jc.StoreBackend)
	setString(&cfg.StorePath, jc.StorePath)
	setString(&cfg.LogLevel, jc.LogLevel)

	if jc.SessionCookieTTL.Duration > 0 {
		cfg.SessionCookieTTL = jc.SessionCookieTTL.Duration
	}
	if jc.ThemeCookieTTL.Duration > 0 {
		cfg.ThemeCookieTTL = jc.ThemeCookieTTL.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
