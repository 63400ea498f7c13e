package cache_test

import (
	"testing"
	"time"

	"github.com/scribehq/scribe/internal/cache"
	"github.com/stretchr/testify/assert"
)

func TestSetGetRoundTrip(t *testing.T) {
	c := cache.NewPageCache(time.Minute)

	_, ok := c.Get("posts:index")
	assert.False(t, ok)

	c.Set("posts:index", []byte("<html>page</html>"))
	body, ok := c.Get("posts:index")
	assert.True(t, ok)
	assert.Equal(t, []byte("<html>page</html>"), body)
}

func TestStoredBodyIsIsolatedFromCaller(t *testing.T) {
	c := cache.NewPageCache(time.Minute)

	buf := []byte("original")
	c.Set("k", buf)
	buf[0] = 'X'

	body, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, []byte("original"), body)
}

func TestEntryExpiresAfterTTL(t *testing.T) {
	c := cache.NewPageCache(30 * time.Millisecond)

	c.Set("k", []byte("stale"))
	_, ok := c.Get("k")
	assert.True(t, ok)

	time.Sleep(60 * time.Millisecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestClearInvalidatesImmediately(t *testing.T) {
	c := cache.NewPageCache(time.Hour)

	c.Set("k", []byte("cached"))
	c.Clear()

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestDeleteDropsSingleEntry(t *testing.T) {
	c := cache.NewPageCache(time.Hour)

	c.Set("a", []byte("a"))
	c.Set("b", []byte("b"))
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)
}
