package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/models"
)

const (
	memberSinceLayout = "2 January 2006"
	lastLoginLayout   = "2 January 2006 at 15:04"
)

// Whoami prints the profile of the signed-in user.
func (a *App) Whoami(_ context.Context) error {
	s := a.currentSession()
	if s == nil {
		printlnFn("You are not logged in.")
		return nil
	}
	a.printProfile(s)
	return nil
}

func (a *App) printProfile(s *models.Session) {
	for _, line := range profileLines(s, a.loc) {
		printlnFn(line)
	}
}

func profileLines(s *models.Session, loc *time.Location) []string {
	return []string{
		fmt.Sprintf("Welcome, %s!", s.Name),
		fmt.Sprintf("  Email:        %s", s.Email),
		fmt.Sprintf("  Member since: %s", formatTimestamp(s.CreatedAt, memberSinceLayout, loc)),
		fmt.Sprintf("  Last login:   %s", formatTimestamp(s.LastLogin, lastLoginLayout, loc)),
		fmt.Sprintf("  Theme:        %s", s.Theme()),
	}
}

// formatTimestamp renders a stored timestamp, or returns it unchanged when
// it cannot be parsed.
func formatTimestamp(v, layout string, loc *time.Location) string {
	t, err := models.ParseTimestamp(v)
	if err != nil {
		return v
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(layout)
}
