package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexIsServedFromCacheUntilCleared(t *testing.T) {
	app := newTestApp(t, time.Hour)
	alice := app.createUser(t, "alice")
	app.createPost(t, alice, "the first post")

	// Warm the cache.
	before := app.get("/", nil)
	require.Equal(t, http.StatusOK, before.Code)

	app.createPost(t, alice, "the invisible post")

	// Within the TTL the exact pre-creation bytes come back.
	cached := app.get("/", nil)
	require.Equal(t, http.StatusOK, cached.Code)
	assert.Equal(t, before.Body.Bytes(), cached.Body.Bytes())
	assert.NotContains(t, cached.Body.String(), "the invisible post")

	// An explicit clear makes the new post visible immediately.
	rec := app.postForm("/admin/cache/clear/", nil, app.sessionFor(t, alice))
	require.Equal(t, http.StatusFound, rec.Code)

	fresh := app.get("/", nil)
	require.Equal(t, http.StatusOK, fresh.Code)
	assert.Contains(t, fresh.Body.String(), "the invisible post")
}

func TestIndexCacheExpiresOnItsOwn(t *testing.T) {
	app := newTestApp(t, 40*time.Millisecond)
	alice := app.createUser(t, "alice")

	require.Equal(t, http.StatusOK, app.get("/", nil).Code)
	app.createPost(t, alice, "patience pays")

	// Still hidden while the entry lives.
	assert.NotContains(t, app.get("/", nil).Body.String(), "patience pays")

	time.Sleep(80 * time.Millisecond)
	assert.Contains(t, app.get("/", nil).Body.String(), "patience pays")
}

func TestCacheClearRequiresLogin(t *testing.T) {
	app := newTestApp(t, time.Hour)

	rec := app.postForm("/admin/cache/clear/", nil, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login/?next=/admin/cache/clear/", rec.Header().Get("Location"))
}
