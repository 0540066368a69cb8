package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/models"
)

// Theme switches the theme, or prints the current one without arguments.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Current theme:", a.currentTheme())
		return nil
	}

	t, err := models.ParseTheme(args[0])
	if err != nil {
		printlnFn("Usage: theme light|dark")
		return err
	}

	if err := a.session.SelectTheme(ctx, t); err != nil {
		a.log.Warn(ctx, "theme not saved on this device", "err", err)
	}
	printlnFn(fmt.Sprintf("Theme set to %s.", t))
	return nil
}

// Save stores the current theme in the account.
func (a *App) Save(ctx context.Context) error {
	res, err := a.session.SaveSettings(ctx)
	a.report(res, err)
	if err != nil {
		return err
	}
	a.setCurrent(res.Session)
	return nil
}
