package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBolt(t *testing.T) *BoltRepository {
	t.Helper()
	r, err := OpenBolt(filepath.Join(t.TempDir(), "page.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestBolt_SetGetDelete(t *testing.T) {
	r := newTestBolt(t)
	ctx := context.Background()

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Set(ctx, "k", []byte("v1")))
	require.NoError(t, r.Set(ctx, "k", []byte("v2")))

	v, err = r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)

	require.NoError(t, r.Delete(ctx, "k"))
	require.NoError(t, r.Delete(ctx, "k"))

	v, err = r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestBolt_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.bolt")
	ctx := context.Background()

	r, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, r.Set(ctx, "amTheme", []byte("dark")))
	require.NoError(t, r.Close())

	r, err = OpenBolt(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	v, err := r.Get(ctx, "amTheme")
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), v)
}
