package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/client"
	"github.com/dmitrijs2005/sessionkeeper/internal/client/config"
	"github.com/dmitrijs2005/sessionkeeper/internal/client/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/client/reconciler"
	"github.com/dmitrijs2005/sessionkeeper/internal/client/repositories/cookies"
	"github.com/dmitrijs2005/sessionkeeper/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/sessionkeeper/internal/client/repositories/tabstore"
	"github.com/dmitrijs2005/sessionkeeper/internal/client/services"
	"github.com/dmitrijs2005/sessionkeeper/internal/filex"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
)

type App struct {
	config  *config.Config
	session services.SessionService
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	loc     *time.Location

	mu      sync.Mutex
	theme   models.Theme
	current *models.Session

	closers []func() error
}

// NewApp wires the storage substrates, the reconciler, the remote client and
// the session service described by c.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		config: c,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		loc:    time.Local,
		theme:  models.ThemeLight,
	}

	page, err := a.openPageStore(ctx)
	if err != nil {
		return nil, err
	}

	cookieStore, err := newCookieStore(c)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	tab := tabstore.New()
	a.closers = append(a.closers, func() error { tab.Close(); return nil })
	log.Debug(ctx, "tab scope opened", "tab_id", tab.TabID())

	store := reconciler.New(page, cookieStore, tab, reconciler.Options{
		SessionCookieTTL: c.SessionCookieTTL,
		ThemeCookieTTL:   c.ThemeCookieTTL,
	}, log.With("component", "reconciler"))

	api, err := client.NewHTTPClient(c.EndpointURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log.With("component", "client")),
	)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.session = services.NewSessionService(api, store, a, log.With("component", "session"))
	return a, nil
}

func (a *App) openPageStore(ctx context.Context) (*localstore.PageStore, error) {
	path, err := filex.EnsureParentDir(a.config.StorePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing local store: %w", err)
	}

	switch a.config.StoreBackend {
	case config.BackendBolt:
		repo, err := localstore.OpenBolt(path)
		if err != nil {
			return nil, fmt.Errorf("error initializing local store: %w", err)
		}
		a.closers = append(a.closers, repo.Close)
		return localstore.NewPageStore(repo), nil
	default:
		db, err := localstore.OpenSQLite(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("error initializing local store: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		return localstore.NewPageStore(localstore.NewSQLiteRepository(db)), nil
	}
}

func newCookieStore(c *config.Config) (*cookies.Store, error) {
	origin, err := c.Origin()
	if err != nil {
		return nil, err
	}
	domain, err := c.ResolveCookieDomain()
	if err != nil {
		return nil, err
	}
	jar, err := cookies.NewJar()
	if err != nil {
		return nil, err
	}
	return cookies.New(jar, origin, domain)
}

// ApplyTheme records the theme the prompt is rendered with.
func (a *App) ApplyTheme(t models.Theme) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.theme = t
}

func (a *App) currentTheme() models.Theme {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.theme
}

func (a *App) setCurrent(s *models.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = s
}

func (a *App) currentSession() *models.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

func (a *App) isLoggedIn() bool {
	return a.currentSession() != nil
}

// Run restores the stored session and theme, then runs the REPL until the
// user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Warn(ctx, "close failed", "err", err)
		}
	}()

	printlnFn("Welcome! (type 'help' for commands)")

	s, _ := a.session.Restore(ctx)
	a.setCurrent(s)
	if s != nil {
		a.printProfile(s)
	} else {
		printlnFn("Please log in or sign up.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the local store and the tab scope.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) getStatus() string {
	s := string(a.currentTheme())
	if cur := a.currentSession(); cur != nil {
		s = cur.Name + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}
