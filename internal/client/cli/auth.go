package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/services"
	"github.com/dmitrijs2005/sessionkeeper/internal/common"
)

// getSimpleText, getPassword and confirm are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	confirm       = Confirm
)

// report prints the outcome of an operation.
func (a *App) report(res services.Result, err error) {
	if errors.Is(err, services.ErrInFlight) {
		printlnFn("Please wait, the previous request is still running.")
		return
	}
	if res.Message != "" {
		printlnFn(res.Message)
	}
}

// Login prompts for credentials and signs in. On success the profile is
// shown. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.session.Login(ctx, email, password)
	a.report(res, err)
	if err != nil {
		return err
	}

	a.setCurrent(res.Session)
	a.printProfile(res.Session)
	return nil
}

// Signup prompts for name, email and a password typed twice, then creates
// the account. It does not sign in.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	again, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(again)

	res, err := a.session.Signup(ctx, name, email, password, again)
	a.report(res, err)
	return err
}

// Logout asks for confirmation and forgets the session on this device.
func (a *App) Logout(ctx context.Context) error {
	res, err := a.session.Logout(ctx, func() bool {
		return confirm(a.reader, "Are you sure you want to logout?", a.out)
	})
	a.report(res, err)
	if err != nil {
		return err
	}
	if res.OK() {
		a.setCurrent(nil)
	}
	return nil
}
