// Package models defines the client-side data carried between the record
// store, the storage substrates and the presentation layer.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidSession is returned when a session lacks one of its identity fields.
var ErrInvalidSession = errors.New("invalid session")

// Session is the cached identity and preference record of the signed-in user.
//
// Timestamps are kept exactly as the record store returns them so that a
// write followed by a read yields an identical value.
type Session struct {
	// Email identifies the user. Case-sensitive.
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	LastLogin string `json:"lastLogin"`
	DarkMode  bool   `json:"darkMode"`
}

// Validate reports whether every identity field is populated.
func (s *Session) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil", ErrInvalidSession)
	}
	var missing []string
	if s.Email == "" {
		missing = append(missing, "email")
	}
	if s.Name == "" {
		missing = append(missing, "name")
	}
	if s.CreatedAt == "" {
		missing = append(missing, "createdAt")
	}
	if s.LastLogin == "" {
		missing = append(missing, "lastLogin")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidSession, strings.Join(missing, ", "))
	}
	return nil
}

// Theme returns the theme matching the DarkMode flag.
func (s *Session) Theme() Theme {
	if s.DarkMode {
		return ThemeDark
	}
	return ThemeLight
}

// Clone returns an independent copy.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	// Date.prototype.toString as produced by spreadsheet backends.
	"Mon Jan 02 2006 15:04:05 GMT-0700",
}

// ParseTimestamp parses a backend timestamp in any of the formats the record
// store is known to emit.
func ParseTimestamp(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if i := strings.Index(v, " ("); i > 0 {
		// drop the "(Central European Summer Time)" suffix of JS date strings
		v = v[:i]
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", v)
}
