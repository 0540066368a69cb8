// Package cookies implements the cross-subdomain cookie substrate.
//
// Values are written as cookies scoped to the parent domain (Domain
// ".example.com", Path "/", SameSite=Lax, Secure) into an http.CookieJar, so
// a value stored while on auth.example.com is visible from shop.example.com.
// The jar enforces the public-suffix rules, expiry and the Secure flag.
package cookies

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

var (
	ErrInsecureOrigin = errors.New("cookie origin must use https")
	ErrDomainMismatch = errors.New("cookie domain does not cover origin host")
	ErrPublicSuffix   = errors.New("cookie domain is a public suffix")
	ErrNotStored      = errors.New("cookie was not stored")
)

// NewJar returns a jar that applies the public suffix list, so a cookie can
// never be scoped to "com" or "co.uk".
func NewJar() (*cookiejar.Jar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

// ParentDomain returns the registrable domain of host ("auth.example.com" →
// "example.com"), which is the widest scope a cookie may use.
func ParentDomain(host string) (string, error) {
	d, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", fmt.Errorf("parent domain of %q: %w", host, err)
	}
	return d, nil
}

// Store reads and writes cookies as seen from one origin.
type Store struct {
	jar    http.CookieJar
	origin *url.URL
	domain string
	now    func() time.Time
}

// New binds a jar to origin. domain is the parent domain, with or without the
// leading dot; it must be origin's host or one of its parents.
func New(jar http.CookieJar, origin *url.URL, domain string) (*Store, error) {
	if origin.Scheme != "https" {
		return nil, fmt.Errorf("%w: %s", ErrInsecureOrigin, origin)
	}
	domain = strings.TrimPrefix(strings.ToLower(domain), ".")
	host := strings.ToLower(origin.Hostname())
	if host != domain && !strings.HasSuffix(host, "."+domain) {
		return nil, fmt.Errorf("%w: %s not within %s", ErrDomainMismatch, host, domain)
	}
	if ps, _ := publicsuffix.PublicSuffix(domain); ps == domain {
		return nil, fmt.Errorf("%w: %s", ErrPublicSuffix, domain)
	}
	return &Store{jar: jar, origin: origin, domain: "." + domain, now: time.Now}, nil
}

// Origin returns a store sharing the same jar and domain but observing from
// another origin, e.g. a sibling subdomain.
func (s *Store) Origin(origin *url.URL) (*Store, error) {
	return New(s.jar, origin, s.domain)
}

func (s *Store) Name() string { return "cookie" }

// Domain returns the cookie Domain attribute, leading dot included.
func (s *Store) Domain() string { return s.domain }

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	for _, c := range s.jar.Cookies(s.origin) {
		if c.Name != key {
			continue
		}
		v, err := url.QueryUnescape(c.Value)
		if err != nil {
			// hand back the raw value; the caller decides whether it parses
			return c.Value, true, nil
		}
		return v, true, nil
	}
	return "", false, nil
}

// Set writes value with the given lifetime. ttl <= 0 makes a session cookie.
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c := s.cookie(key, url.QueryEscape(value))
	if ttl > 0 {
		c.Expires = s.now().Add(ttl)
		c.MaxAge = int(ttl / time.Second)
	}
	s.jar.SetCookies(s.origin, []*http.Cookie{c})

	// the jar drops cookies it refuses without reporting it
	got, ok, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok || got != value {
		return fmt.Errorf("%w: %s on %s", ErrNotStored, key, s.domain)
	}
	return nil
}

// Remove expires the cookie. Removing an absent cookie is a no-op.
func (s *Store) Remove(_ context.Context, key string) error {
	c := s.cookie(key, "")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	s.jar.SetCookies(s.origin, []*http.Cookie{c})
	return nil
}

func (s *Store) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   s.domain,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
