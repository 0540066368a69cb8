// Package config loads runtime configuration for the session CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   remote endpoint URL
//	-o string   page origin URL (https)
//	-d string   cookie parent domain
//	-s int      session cookie lifetime (days)
//	-b string   local store backend: sqlite or bolt
//	-p string   local store file path
//	-l string   log level
//
// # JSON schema
//
// Durations accept strings like "720h" or integer nanoseconds:
//
//	{
//	  "endpoint_url": "https://script.example.com/exec",
//	  "origin_url": "https://account.example.com",
//	  "cookie_domain": "example.com",
//	  "session_cookie_ttl": "720h",
//	  "theme_cookie_ttl": "8760h",
//	  "store_backend": "bolt",
//	  "store_path": "session.bolt",
//	  "request_timeout": "10s",
//	  "log_level": "debug"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
