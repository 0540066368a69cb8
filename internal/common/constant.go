// Package common contains constants and small helpers shared by the
// session client components.
package common

// Storage keys. They are shared by every substrate so a value written through
// one scope can be located through any other.
const (
	// SessionKey holds the JSON-encoded session of the signed-in user.
	SessionKey = "amUserData"
	// ThemeKey holds the literal "light" or "dark".
	ThemeKey = "amTheme"
)

// RequestIDHeaderName is the HTTP header carrying the per-request
// correlation id on outbound calls to the record store.
const RequestIDHeaderName = "X-Request-ID"
