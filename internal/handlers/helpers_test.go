package handlers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/scribehq/scribe/internal/cache"
	"github.com/scribehq/scribe/internal/middleware"
	"github.com/scribehq/scribe/internal/models"
	"github.com/scribehq/scribe/internal/router"
	"github.com/scribehq/scribe/internal/storage"
	"github.com/scribehq/scribe/internal/validators"
	"github.com/scribehq/scribe/web"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-session-secret"

type testApp struct {
	e  *echo.Echo
	db *gorm.DB
}

// newTestApp stands up the full application against an in-memory
// database and a throwaway media directory. cacheTTL controls the
// front-page cache so tests can pick "never expires" or "expires fast".
func newTestApp(t *testing.T, cacheTTL time.Duration) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	images, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = web.NewRenderer()
	e.Validator = validators.NewValidator()

	require.NoError(t, router.SetupRoutes(e, router.Options{
		DB:            db,
		Images:        images,
		PageCache:     cache.NewPageCache(cacheTTL),
		SessionSecret: testSecret,
		PageSize:      10,
	}))

	return &testApp{e: e, db: db}
}

func (a *testApp) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
	require.NoError(t, a.db.Create(user).Error)
	return user
}

func (a *testApp) createGroup(t *testing.T, slug string) *models.Group {
	t.Helper()
	group := &models.Group{Slug: slug, Title: "The " + slug + " group"}
	require.NoError(t, a.db.Create(group).Error)
	return group
}

func (a *testApp) createPost(t *testing.T, author *models.User, text string) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, AuthorID: author.ID}
	require.NoError(t, a.db.Create(post).Error)
	return post
}

// sessionFor forges the session cookie a login would have set.
func (a *testApp) sessionFor(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	token, err := middleware.IssueSession(testSecret, user)
	require.NoError(t, err)
	return middleware.SessionCookie(token)
}

func (a *testApp) get(path string, session *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if session != nil {
		req.AddCookie(session)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postForm(path string, form url.Values, session *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if session != nil {
		req.AddCookie(session)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

// postMultipart submits fields plus an optional file part named image.
func (a *testApp) postMultipart(t *testing.T, path string, fields map[string]string, imageName string, image []byte, session *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageName != "" {
		part, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(image))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	if session != nil {
		req.AddCookie(session)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, a.db.Model(&models.Post{}).Count(&count).Error)
	return count
}

func (a *testApp) followCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, a.db.Model(&models.Follow{}).Count(&count).Error)
	return count
}
