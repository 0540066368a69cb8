// Package services holds the client's session workflows: login, signup,
// logout, theme selection and preference sync. Each workflow is guarded by
// an Affordance and reports a classified Result for the presentation layer.
package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/client"
	"github.com/dmitrijs2005/sessionkeeper/internal/client/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
)

const MinPasswordLength = 8

// User-facing messages.
const (
	MsgLoginMissingFields = "Please enter your email and password."
	MsgLoginSuccess       = "Login successful! Redirecting..."
	MsgLoginFailed        = "Login failed. Please check your credentials."
	MsgLoginNetwork       = "Network error. Please check your connection and try again."

	MsgSignupMissingFields = "Please fill in all fields."
	MsgSignupMismatch      = "Passwords do not match!"
	MsgSignupTooShort      = "Password must be at least 8 characters long."
	MsgSignupSuccess       = "Account created successfully! You can now sign in."
	MsgSignupFailed        = "Signup failed. Please try again."
	MsgSignupNetwork       = MsgLoginNetwork

	MsgLogoutSuccess = "You have been logged out successfully."

	MsgSettingsNotLoggedIn = "You must be logged in to save settings."
	MsgSettingsSaved       = "Settings saved successfully!"
	MsgSettingsFailed      = "Failed to save settings. Please try again."
	MsgSettingsNetwork     = "Network error. Please check your connection."
)

// SessionStore is the persisted session and theme slot.
type SessionStore interface {
	ReadSession(ctx context.Context) (*models.Session, bool)
	WriteSession(ctx context.Context, s *models.Session) error
	ClearSession(ctx context.Context) error
	ReadTheme(ctx context.Context) (models.Theme, bool)
	WriteTheme(ctx context.Context, t models.Theme) error
}

// ThemeApplier renders a theme in the UI.
type ThemeApplier interface {
	ApplyTheme(t models.Theme)
}

// SessionService defines the session workflows.
//
// Operations returning a Result also return an error whenever the Result
// is Failed, or ErrInFlight when the same operation is already running.
// A declined logout is not an error; a nil confirm counts as declined.
// A successful UpdatePreference updates the darkMode of the session passed in.
type SessionService interface {
	Login(ctx context.Context, email string, password []byte) (Result, error)
	Signup(ctx context.Context, name, email string, password, confirm []byte) (Result, error)
	Logout(ctx context.Context, confirm func() bool) (Result, error)
	SelectTheme(ctx context.Context, t models.Theme) error
	UpdatePreference(ctx context.Context, s *models.Session, t models.Theme) (Result, error)
	SaveSettings(ctx context.Context) (Result, error)
	Restore(ctx context.Context) (*models.Session, models.Theme)
	Affordance(op Op) *Affordance
}

type sessionService struct {
	client client.Client
	store  SessionStore
	theme  ThemeApplier
	log    logging.Logger

	affordances map[Op]*Affordance
}

// NewSessionService constructs a SessionService over the remote client, the
// persisted store and the UI theme applier.
func NewSessionService(c client.Client, store SessionStore, theme ThemeApplier, log logging.Logger) SessionService {
	if log == nil {
		log = logging.NewNop()
	}
	s := &sessionService{
		client:      c,
		store:       store,
		theme:       theme,
		log:         log,
		affordances: make(map[Op]*Affordance),
	}
	for _, op := range []Op{OpLogin, OpSignup, OpLogout, OpUpdatePreference} {
		s.affordances[op] = NewAffordance(op)
	}
	return s
}

func (s *sessionService) Affordance(op Op) *Affordance {
	return s.affordances[op]
}

// run executes fn under the affordance of op.
func (s *sessionService) run(op Op, fn func() (Result, error)) (Result, error) {
	a := s.affordances[op]
	if err := a.begin(); err != nil {
		return Result{Op: op, State: InFlight}, err
	}
	var res Result
	defer func() { a.finish(res.State) }()

	res, err := fn()
	return res, err
}

func (s *sessionService) Login(ctx context.Context, email string, password []byte) (Result, error) {
	return s.run(OpLogin, func() (Result, error) {
		if email == "" || len(password) == 0 {
			return invalid(OpLogin, MsgLoginMissingFields)
		}

		session, err := s.client.Login(ctx, email, password)
		if err != nil {
			s.log.Info(ctx, "login failed", "email", email, "err", err)
			return classify(OpLogin, err, MsgLoginFailed, MsgLoginNetwork)
		}

		if err := s.store.WriteSession(ctx, session); err != nil {
			s.log.Warn(ctx, "session not fully persisted", "err", err)
		}
		s.setTheme(ctx, session.Theme())

		s.log.Info(ctx, "logged in", "email", session.Email)
		return Result{Op: OpLogin, State: Succeeded, Message: MsgLoginSuccess, Session: session.Clone()}, nil
	})
}

func (s *sessionService) Signup(ctx context.Context, name, email string, password, confirm []byte) (Result, error) {
	return s.run(OpSignup, func() (Result, error) {
		switch {
		case name == "" || email == "" || len(password) == 0 || len(confirm) == 0:
			return invalid(OpSignup, MsgSignupMissingFields)
		case string(password) != string(confirm):
			return invalid(OpSignup, MsgSignupMismatch)
		case utf8.RuneCount(password) < MinPasswordLength:
			return invalid(OpSignup, MsgSignupTooShort)
		}

		if err := s.client.Signup(ctx, name, email, password); err != nil {
			s.log.Info(ctx, "signup failed", "email", email, "err", err)
			return classify(OpSignup, err, MsgSignupFailed, MsgSignupNetwork)
		}

		s.log.Info(ctx, "account created", "email", email)
		return Result{Op: OpSignup, State: Succeeded, Message: MsgSignupSuccess}, nil
	})
}

func (s *sessionService) Logout(ctx context.Context, confirm func() bool) (Result, error) {
	return s.run(OpLogout, func() (Result, error) {
		if confirm == nil || !confirm() {
			return Result{Op: OpLogout, State: Idle, Kind: KindCancelled}, nil
		}

		if err := s.store.ClearSession(ctx); err != nil {
			s.log.Warn(ctx, "session not fully cleared", "err", err)
		}

		s.log.Info(ctx, "logged out")
		return Result{Op: OpLogout, State: Succeeded, Message: MsgLogoutSuccess}, nil
	})
}

func (s *sessionService) SelectTheme(ctx context.Context, t models.Theme) error {
	if _, err := models.ParseTheme(string(t)); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return s.setTheme(ctx, t)
}

// setTheme applies t and records it in the theme slot.
func (s *sessionService) setTheme(ctx context.Context, t models.Theme) error {
	if s.theme != nil {
		s.theme.ApplyTheme(t)
	}
	if err := s.store.WriteTheme(ctx, t); err != nil {
		s.log.Warn(ctx, "theme not fully persisted", "theme", string(t), "err", err)
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}

func (s *sessionService) UpdatePreference(ctx context.Context, session *models.Session, t models.Theme) (Result, error) {
	return s.run(OpUpdatePreference, func() (Result, error) {
		if session == nil {
			return Result{
				Op:      OpUpdatePreference,
				State:   Failed,
				Kind:    KindUnauthenticated,
				Message: MsgSettingsNotLoggedIn,
			}, ErrUnauthenticated
		}

		dark := t.IsDark()
		if err := s.client.UpdateSettings(ctx, session.Email, dark); err != nil {
			s.log.Info(ctx, "settings update failed", "email", session.Email, "err", err)
			return classify(OpUpdatePreference, err, MsgSettingsFailed, MsgSettingsNetwork)
		}

		session.DarkMode = dark
		if err := s.store.WriteSession(ctx, session); err != nil {
			s.log.Warn(ctx, "session not fully persisted", "err", err)
		}

		return Result{Op: OpUpdatePreference, State: Succeeded, Message: MsgSettingsSaved, Session: session.Clone()}, nil
	})
}

func (s *sessionService) SaveSettings(ctx context.Context) (Result, error) {
	session, ok := s.store.ReadSession(ctx)
	if !ok {
		session = nil
	}
	t, ok := s.store.ReadTheme(ctx)
	if !ok {
		t = models.ThemeLight
	}
	return s.UpdatePreference(ctx, session, t)
}

// Restore applies the persisted theme and returns the stored session, if
// any. A stored session's darkMode overrides the theme slot.
func (s *sessionService) Restore(ctx context.Context) (*models.Session, models.Theme) {
	t, ok := s.store.ReadTheme(ctx)
	if !ok {
		t = models.ThemeLight
	}

	session, ok := s.store.ReadSession(ctx)
	if !ok {
		if s.theme != nil {
			s.theme.ApplyTheme(t)
		}
		return nil, t
	}

	t = session.Theme()
	// setTheme logs a persistence failure; the theme is applied regardless
	_ = s.setTheme(ctx, t)
	return session, t
}

func invalid(op Op, msg string) (Result, error) {
	return Result{Op: op, State: Failed, Kind: KindValidation, Message: msg}, fmt.Errorf("%w: %s", ErrValidation, msg)
}

// classify turns a client error into a Failed result. A non-empty rejection
// message replaces fallback.
func classify(op Op, err error, fallback, network string) (Result, error) {
	var rej *client.RejectedError
	if errors.As(err, &rej) {
		msg := fallback
		if rej.Message != "" {
			msg = rej.Message
		}
		return Result{Op: op, State: Failed, Kind: KindApplication, Message: msg}, err
	}
	return Result{Op: op, State: Failed, Kind: KindTransport, Message: network}, err
}
