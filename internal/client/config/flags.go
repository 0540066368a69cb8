package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/flagx"
)

const day = 24 * time.Hour

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   remote endpoint URL
//	-o string   page origin URL
//	-d string   cookie parent domain
//	-s int      session cookie lifetime in days
//	-b string   local store backend: sqlite or bolt
//	-p string   local store file path
//	-l string   log level
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-o", "-d", "-s", "-b", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointURL, "u", cfg.EndpointURL, "remote endpoint URL")
	fs.StringVar(&cfg.OriginURL, "o", cfg.OriginURL, "page origin URL")
	fs.StringVar(&cfg.CookieDomain, "d", cfg.CookieDomain, "cookie parent domain (derived from origin when empty)")
	sessionDays := fs.Int("s", int(cfg.SessionCookieTTL/day), "session cookie lifetime (in days)")
	fs.StringVar(&cfg.StoreBackend, "b", cfg.StoreBackend, "local store backend: sqlite or bolt")
	fs.StringVar(&cfg.StorePath, "p", cfg.StorePath, "local store file path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionCookieTTL = time.Duration(*sessionDays) * day
}
