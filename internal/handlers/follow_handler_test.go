package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowThenUnfollowRestoresCount(t *testing.T) {
	app := newTestApp(t, time.Hour)
	reader := app.createUser(t, "reader")
	app.createUser(t, "alice")
	before := app.followCount(t)

	rec := app.postForm("/profile/alice/follow/", nil, app.sessionFor(t, reader))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/follow/", rec.Header().Get("Location"))
	assert.Equal(t, before+1, app.followCount(t))

	// The two actions land on different pages.
	rec = app.postForm("/profile/alice/unfollow/", nil, app.sessionFor(t, reader))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/profile/alice/", rec.Header().Get("Location"))
	assert.Equal(t, before, app.followCount(t))
}

func TestFollowTwiceCreatesOneEdge(t *testing.T) {
	app := newTestApp(t, time.Hour)
	reader := app.createUser(t, "reader")
	app.createUser(t, "alice")

	session := app.sessionFor(t, reader)
	rec := app.postForm("/profile/alice/follow/", nil, session)
	require.Equal(t, http.StatusFound, rec.Code)
	rec = app.postForm("/profile/alice/follow/", nil, session)
	require.Equal(t, http.StatusFound, rec.Code)

	assert.EqualValues(t, 1, app.followCount(t))
}

func TestSelfFollowIsSilentlyIgnored(t *testing.T) {
	app := newTestApp(t, time.Hour)
	alice := app.createUser(t, "alice")

	rec := app.postForm("/profile/alice/follow/", nil, app.sessionFor(t, alice))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/follow/", rec.Header().Get("Location"))
	assert.EqualValues(t, 0, app.followCount(t))
}

func TestUnfollowWithoutEdgeIsNoOp(t *testing.T) {
	app := newTestApp(t, time.Hour)
	reader := app.createUser(t, "reader")
	app.createUser(t, "alice")

	rec := app.postForm("/profile/alice/unfollow/", nil, app.sessionFor(t, reader))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.EqualValues(t, 0, app.followCount(t))
}

func TestAnonymousFollowRedirectsToLogin(t *testing.T) {
	app := newTestApp(t, time.Hour)
	app.createUser(t, "alice")
	before := app.followCount(t)

	rec := app.postForm("/profile/alice/follow/", nil, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login/?next=/profile/alice/follow/", rec.Header().Get("Location"))
	assert.Equal(t, before, app.followCount(t))
}

func TestFollowUnknownAuthorIs404(t *testing.T) {
	app := newTestApp(t, time.Hour)
	reader := app.createUser(t, "reader")

	rec := app.postForm("/profile/nobody/follow/", nil, app.sessionFor(t, reader))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileShowsFollowState(t *testing.T) {
	app := newTestApp(t, time.Hour)
	reader := app.createUser(t, "reader")
	app.createUser(t, "alice")
	session := app.sessionFor(t, reader)

	rec := app.get("/profile/alice/", session)
	assert.Contains(t, rec.Body.String(), "Follow")
	assert.NotContains(t, rec.Body.String(), "Unfollow")

	require.Equal(t, http.StatusFound, app.postForm("/profile/alice/follow/", nil, session).Code)

	rec = app.get("/profile/alice/", session)
	assert.Contains(t, rec.Body.String(), "Unfollow")
}
