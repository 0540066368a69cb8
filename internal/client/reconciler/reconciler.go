package reconciler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/client/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
)

const (
	DefaultSessionCookieTTL = 30 * 24 * time.Hour
	DefaultThemeCookieTTL   = 365 * 24 * time.Hour
)

// Substrate is one key/value storage scope.
//
// Get reports ok=false for an absent key. Set with ttl <= 0 keeps the value
// for the substrate's natural lifetime. Remove of an absent key succeeds.
type Substrate interface {
	Name() string
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}

// Options tunes cookie lifetimes. Zero values select the defaults.
type Options struct {
	SessionCookieTTL time.Duration
	ThemeCookieTTL   time.Duration
}

type Reconciler struct {
	page   Substrate
	cookie Substrate
	tab    Substrate
	opts   Options
	log    logging.Logger
}

// New wires the three substrates in read-priority order.
func New(page, cookie, tab Substrate, opts Options, log logging.Logger) *Reconciler {
	if opts.SessionCookieTTL <= 0 {
		opts.SessionCookieTTL = DefaultSessionCookieTTL
	}
	if opts.ThemeCookieTTL <= 0 {
		opts.ThemeCookieTTL = DefaultThemeCookieTTL
	}
	return &Reconciler{page: page, cookie: cookie, tab: tab, opts: opts, log: log}
}

type placement struct {
	sub Substrate
	ttl time.Duration
}

func (r *Reconciler) sessionPlacements() []placement {
	return []placement{
		{sub: r.page},
		{sub: r.cookie, ttl: r.opts.SessionCookieTTL},
		{sub: r.tab},
	}
}

func (r *Reconciler) themePlacements() []placement {
	return []placement{
		{sub: r.page},
		{sub: r.cookie, ttl: r.opts.ThemeCookieTTL},
	}
}

// ReadSession returns the current session, or false when no substrate holds
// a valid one.
func (r *Reconciler) ReadSession(ctx context.Context) (*models.Session, bool) {
	if s, ok := r.readSessionFrom(ctx, r.page); ok {
		return s, true
	}
	if s, ok := r.readSessionFrom(ctx, r.cookie); ok {
		r.backfill(ctx, common.SessionKey, s, placement{sub: r.page})
		return s, true
	}
	if s, ok := r.readSessionFrom(ctx, r.tab); ok {
		r.backfill(ctx, common.SessionKey, s,
			placement{sub: r.page},
			placement{sub: r.cookie, ttl: r.opts.SessionCookieTTL})
		return s, true
	}
	return nil, false
}

// HasSession is the "session present" signal used to pick the initial view.
func (r *Reconciler) HasSession(ctx context.Context) bool {
	_, ok := r.ReadSession(ctx)
	return ok
}

// WriteSession stores s in every substrate. Each write is attempted even if
// an earlier one failed; the joined failures are returned for logging.
func (r *Reconciler) WriteSession(ctx context.Context, s *models.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.fanOut(ctx, common.SessionKey, string(data), r.sessionPlacements())
}

// ClearSession removes the session from every substrate. It is idempotent.
func (r *Reconciler) ClearSession(ctx context.Context) error {
	return r.removeAll(ctx, common.SessionKey, r.sessionPlacements())
}

// ReadTheme returns the stored theme, or false when none is stored.
func (r *Reconciler) ReadTheme(ctx context.Context) (models.Theme, bool) {
	if t, ok := r.readThemeFrom(ctx, r.page); ok {
		return t, true
	}
	if t, ok := r.readThemeFrom(ctx, r.cookie); ok {
		if err := r.page.Set(ctx, common.ThemeKey, string(t), 0); err != nil {
			r.log.Warn(ctx, "theme backfill failed", "substrate", r.page.Name(), "err", err)
		}
		return t, true
	}
	return "", false
}

// WriteTheme stores t in the page and cookie substrates.
func (r *Reconciler) WriteTheme(ctx context.Context, t models.Theme) error {
	if _, err := models.ParseTheme(string(t)); err != nil {
		return err
	}
	return r.fanOut(ctx, common.ThemeKey, string(t), r.themePlacements())
}

// ClearTheme forgets the theme preference everywhere.
func (r *Reconciler) ClearTheme(ctx context.Context) error {
	return r.removeAll(ctx, common.ThemeKey, r.themePlacements())
}

func (r *Reconciler) readSessionFrom(ctx context.Context, sub Substrate) (*models.Session, bool) {
	raw, ok := r.get(ctx, sub, common.SessionKey)
	if !ok {
		return nil, false
	}
	s, err := decodeSession(raw)
	if err != nil {
		r.dropCorrupt(ctx, sub, common.SessionKey, err)
		return nil, false
	}
	return s, true
}

func (r *Reconciler) readThemeFrom(ctx context.Context, sub Substrate) (models.Theme, bool) {
	raw, ok := r.get(ctx, sub, common.ThemeKey)
	if !ok {
		return "", false
	}
	t, err := models.ParseTheme(raw)
	if err != nil {
		r.dropCorrupt(ctx, sub, common.ThemeKey, err)
		return "", false
	}
	return t, true
}

// get treats a failing substrate as empty.
func (r *Reconciler) get(ctx context.Context, sub Substrate, key string) (string, bool) {
	raw, ok, err := sub.Get(ctx, key)
	if err != nil {
		r.log.Warn(ctx, "substrate read failed", "substrate", sub.Name(), "key", key, "err", err)
		return "", false
	}
	return raw, ok
}

func (r *Reconciler) dropCorrupt(ctx context.Context, sub Substrate, key string, cause error) {
	r.log.Warn(ctx, "dropping corrupt entry", "substrate", sub.Name(), "key", key, "err", cause)
	if err := sub.Remove(ctx, key); err != nil {
		r.log.Warn(ctx, "corrupt entry removal failed", "substrate", sub.Name(), "key", key, "err", err)
	}
}

func (r *Reconciler) backfill(ctx context.Context, key string, s *models.Session, targets ...placement) {
	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := r.fanOut(ctx, key, string(data), targets); err != nil {
		r.log.Warn(ctx, "session backfill incomplete", "err", err)
	}
}

func (r *Reconciler) fanOut(ctx context.Context, key, value string, targets []placement) error {
	var errs []error
	for _, p := range targets {
		if err := p.sub.Set(ctx, key, value, p.ttl); err != nil {
			r.log.Warn(ctx, "substrate write failed", "substrate", p.sub.Name(), "key", key, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", p.sub.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (r *Reconciler) removeAll(ctx context.Context, key string, targets []placement) error {
	var errs []error
	for _, p := range targets {
		if err := p.sub.Remove(ctx, key); err != nil {
			r.log.Warn(ctx, "substrate remove failed", "substrate", p.sub.Name(), "key", key, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", p.sub.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func decodeSession(raw string) (*models.Session, error) {
	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
