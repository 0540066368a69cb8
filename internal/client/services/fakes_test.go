package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/models"
)

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	mu sync.Mutex

	LoginRet *models.Session
	LoginErr error

	SignupErr error

	UpdateErr error

	// block, when set, is waited on inside every call.
	block chan struct{}
	// entered receives once per call, before block.
	entered chan struct{}

	Calls        int
	LastEmail    string
	LastName     string
	LastPassword string
	LastDarkMode bool
}

func (f *fakeClient) enter() {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeClient) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	f.mu.Lock()
	f.Calls++
	f.LastEmail = email
	f.LastPassword = string(password)
	f.mu.Unlock()
	f.enter()
	return f.LoginRet.Clone(), f.LoginErr
}

func (f *fakeClient) Signup(ctx context.Context, name, email string, password []byte) error {
	f.mu.Lock()
	f.Calls++
	f.LastName = name
	f.LastEmail = email
	f.LastPassword = string(password)
	f.mu.Unlock()
	f.enter()
	return f.SignupErr
}

func (f *fakeClient) UpdateSettings(ctx context.Context, email string, darkMode bool) error {
	f.mu.Lock()
	f.Calls++
	f.LastEmail = email
	f.LastDarkMode = darkMode
	f.mu.Unlock()
	f.enter()
	return f.UpdateErr
}

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls
}

// fakeStore implements SessionStore in memory.
type fakeStore struct {
	mu      sync.Mutex
	session *models.Session
	theme   models.Theme

	WriteSessionErr error
	WriteThemeErr   error

	SessionWrites int
	Clears        int
}

func (s *fakeStore) ReadSession(context.Context) (*models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, false
	}
	return s.session.Clone(), true
}

func (s *fakeStore) WriteSession(_ context.Context, v *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SessionWrites++
	s.session = v.Clone()
	return s.WriteSessionErr
}

func (s *fakeStore) ClearSession(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Clears++
	s.session = nil
	return nil
}

func (s *fakeStore) ReadTheme(context.Context) (models.Theme, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme, s.theme != ""
}

func (s *fakeStore) WriteTheme(_ context.Context, t models.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = t
	return s.WriteThemeErr
}

// fakeApplier records applied themes.
type fakeApplier struct {
	mu      sync.Mutex
	applied []models.Theme
}

func (a *fakeApplier) ApplyTheme(t models.Theme) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.applied = append(a.applied, t)
}

func (a *fakeApplier) current() models.Theme {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.applied) == 0 {
		return ""
	}
	return a.applied[len(a.applied)-1]
}
