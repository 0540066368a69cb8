package cookies

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func newStore(t *testing.T, origin, domain string) *Store {
	t.Helper()
	jar, err := NewJar()
	require.NoError(t, err)
	s, err := New(jar, mustURL(t, origin), domain)
	require.NoError(t, err)
	return s
}

func TestStore_SetGetRemove(t *testing.T) {
	s := newStore(t, "https://auth.example.com", "example.com")
	ctx := context.Background()

	assert.Equal(t, "cookie", s.Name())
	assert.Equal(t, ".example.com", s.Domain())

	_, ok, err := s.Get(ctx, "amUserData")
	require.NoError(t, err)
	assert.False(t, ok)

	value := `{"email":"a@b.com","name":"Ana Lopez; x=1"}`
	require.NoError(t, s.Set(ctx, "amUserData", value, 30*24*time.Hour))

	got, ok, err := s.Get(ctx, "amUserData")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value, got, "JSON with separators must survive the cookie encoding")

	require.NoError(t, s.Remove(ctx, "amUserData"))
	require.NoError(t, s.Remove(ctx, "amUserData"))

	_, ok, err = s.Get(ctx, "amUserData")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_VisibleFromSiblingSubdomain(t *testing.T) {
	auth := newStore(t, "https://auth.example.com", ".example.com")
	shop, err := auth.Origin(mustURL(t, "https://shop.example.com/cart"))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, auth.Set(ctx, "amTheme", "dark", 365*24*time.Hour))

	got, ok, err := shop.Get(ctx, "amTheme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", got)

	require.NoError(t, shop.Remove(ctx, "amTheme"))
	_, ok, _ = auth.Get(ctx, "amTheme")
	assert.False(t, ok, "removal from a sibling must be visible everywhere")
}

func TestStore_ZeroTTLIsSessionCookie(t *testing.T) {
	s := newStore(t, "https://auth.example.com", "example.com")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v", 0))

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestStore_PastExpiryIsAbsent(t *testing.T) {
	s := newStore(t, "https://auth.example.com", "example.com")
	c := s.cookie("k", "v")
	c.Expires = time.Now().Add(-time.Hour)
	s.jar.SetCookies(s.origin, []*http.Cookie{c})

	_, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_RawValueReturnedWhenNotEscaped(t *testing.T) {
	s := newStore(t, "https://auth.example.com", "example.com")
	c := s.cookie("amUserData", "%zz")
	s.jar.SetCookies(s.origin, []*http.Cookie{c})

	got, ok, err := s.Get(context.Background(), "amUserData")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "%zz", got)
}

func TestNew_RejectsBadScopes(t *testing.T) {
	jar, err := NewJar()
	require.NoError(t, err)

	_, err = New(jar, mustURL(t, "http://auth.example.com"), "example.com")
	require.ErrorIs(t, err, ErrInsecureOrigin)

	_, err = New(jar, mustURL(t, "https://auth.example.com"), "other.com")
	require.ErrorIs(t, err, ErrDomainMismatch)

	_, err = New(jar, mustURL(t, "https://badexample.com"), "example.com")
	require.ErrorIs(t, err, ErrDomainMismatch)

	_, err = New(jar, mustURL(t, "https://auth.example.co.uk"), "co.uk")
	require.ErrorIs(t, err, ErrPublicSuffix)

	_, err = New(jar, mustURL(t, "https://auth.example.com"), ".com")
	require.ErrorIs(t, err, ErrPublicSuffix)
}

// refusingJar accepts nothing, like a jar applying rules the store did not.
type refusingJar struct{}

func (refusingJar) SetCookies(*url.URL, []*http.Cookie) {}
func (refusingJar) Cookies(*url.URL) []*http.Cookie     { return nil }

func TestStore_SetReportsDroppedCookie(t *testing.T) {
	s, err := New(refusingJar{}, mustURL(t, "https://auth.example.com"), "example.com")
	require.NoError(t, err)

	err = s.Set(context.Background(), "amUserData", `{"email":"a@b.com"}`, time.Hour)
	require.ErrorIs(t, err, ErrNotStored)
}

func TestParentDomain(t *testing.T) {
	d, err := ParentDomain("auth.example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com", d)

	d, err = ParentDomain("shop.store.co.uk")
	require.NoError(t, err)
	assert.Equal(t, "store.co.uk", d)

	_, err = ParentDomain("com")
	require.Error(t, err)
}
