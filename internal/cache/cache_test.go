package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, version string) *Cache {
	t.Helper()
	c, err := New(t.TempDir(), version)
	require.NoError(t, err)
	return c
}

func TestCache_RoundTrip(t *testing.T) {
	c := newTestCache(t, "1.0.0")

	require.NoError(t, c.Put("https://example.com/tpl", "template", []byte("content")))

	data, ok := c.Get("https://example.com/tpl", "template")
	require.True(t, ok)
	assert.Equal(t, "content", string(data))

	_, ok = c.Get("https://example.com/other", "template")
	assert.False(t, ok)
}

func TestCache_KeyIncludesTypeAndVersion(t *testing.T) {
	c := newTestCache(t, "1.0.0")

	k1 := c.Key("https://example.com/tpl", "template")
	k2 := c.Key("https://example.com/tpl", "installer")
	assert.NotEqual(t, k1, k2)
	assert.Len(t, k1, 32, "md5 hex digest")
}

func TestCache_ExpiredEntryIsInvalid(t *testing.T) {
	c := newTestCache(t, "1.0.0")
	require.NoError(t, c.Put("https://example.com/tpl", "template", []byte("content")))

	// jump past the TTL
	c.now = func() time.Time { return time.Now().Add(TTL + time.Hour) }

	_, ok := c.Get("https://example.com/tpl", "template")
	assert.False(t, ok)
}

func TestCache_VersionBumpInvalidates(t *testing.T) {
	dir := t.TempDir()
	old, err := New(dir, "1.0.0")
	require.NoError(t, err)
	require.NoError(t, old.Put("https://example.com/tpl", "template", []byte("content")))

	bumped, err := New(dir, "1.1.0")
	require.NoError(t, err)
	_, ok := bumped.Get("https://example.com/tpl", "template")
	assert.False(t, ok)
}

func TestCache_CleanDropsOnlyStale(t *testing.T) {
	dir := t.TempDir()
	old, err := New(dir, "1.0.0")
	require.NoError(t, err)
	require.NoError(t, old.Put("https://example.com/stale", "template", []byte("a")))

	current, err := New(dir, "2.0.0")
	require.NoError(t, err)
	require.NoError(t, current.Put("https://example.com/fresh", "template", []byte("b")))

	removed, err := current.Clean()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, ok := current.Get("https://example.com/fresh", "template")
	assert.True(t, ok)

	entries, err := current.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
