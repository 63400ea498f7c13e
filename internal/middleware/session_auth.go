package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/scribehq/scribe/internal/models"
	"github.com/scribehq/scribe/internal/repositories"
)

// SessionCookieName is the cookie carrying the signed session claims.
const SessionCookieName = "scribe_session"

const sessionLifetime = 14 * 24 * time.Hour

const userContextKey = "user"

// IssueSession signs session claims for a user.
func IssueSession(secret string, user *models.User) (string, error) {
	claims := &models.SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// SessionCookie wraps a signed session token in its cookie.
func SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionLifetime),
	}
}

// ExpiredSessionCookie is set on logout to drop the session.
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
}

// LoadUser resolves the session cookie into the current user and stores
// it in the request context. Anonymous and invalid sessions pass
// through with no user set; protection is RequireLogin's job.
func LoadUser(secret string, userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims := &models.SessionClaims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return next(c)
			}

			user, err := userRepo.GetUserByID(claims.UserID)
			if err != nil {
				return next(c)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireLogin redirects anonymous callers to the login page with a
// next parameter pointing back at the original URL. Protected actions
// never answer 401; login-and-return is the contract.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				return c.Redirect(http.StatusFound, LoginURL(c.Request().URL.RequestURI()))
			}
			return next(c)
		}
	}
}

// LoginURL builds the login redirect for a protected target. The target
// is a server-generated path, kept unescaped to match the reference
// redirect format.
func LoginURL(next string) string {
	return "/auth/login/?next=" + next
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}
