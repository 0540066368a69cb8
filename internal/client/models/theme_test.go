package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)
	assert.True(t, th.IsDark())

	th, err = ParseTheme("light")
	require.NoError(t, err)
	assert.False(t, th.IsDark())

	for _, bad := range []string{"", "Dark", "blue", `"dark"`} {
		_, err := ParseTheme(bad)
		require.ErrorIs(t, err, ErrInvalidTheme, bad)
	}
}

func TestThemeFromDarkMode(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeFromDarkMode(true))
	assert.Equal(t, ThemeLight, ThemeFromDarkMode(false))
}
