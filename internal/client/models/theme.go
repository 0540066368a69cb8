package models

import (
	"errors"
	"fmt"
)

// ErrInvalidTheme is returned when a value is neither "light" nor "dark".
var ErrInvalidTheme = errors.New("invalid theme")

// Theme is the visual preference. It exists independently of any session.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme accepts exactly the literals "light" and "dark".
func ParseTheme(v string) (Theme, error) {
	switch Theme(v) {
	case ThemeLight, ThemeDark:
		return Theme(v), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, v)
	}
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// ThemeFromDarkMode maps the session flag to a theme.
func ThemeFromDarkMode(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}
