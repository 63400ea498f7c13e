package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/scribehq/scribe/internal/middleware"
	"github.com/scribehq/scribe/internal/models"
	"github.com/scribehq/scribe/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles signup, login, and logout.
type AuthHandler struct {
	userRepository repositories.UserRepository
	sessionSecret  string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, sessionSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		sessionSecret:  sessionSecret,
	}
}

// RegisterAuthRoutes registers authentication routes.
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.GET("/signup/", h.SignupForm)
	g.POST("/signup/", h.Signup)
	g.GET("/login/", h.LoginForm)
	g.POST("/login/", h.Login)
	g.POST("/logout/", h.Logout)
}

// SignupForm renders the empty registration form.
func (h *AuthHandler) SignupForm(c echo.Context) error {
	return h.renderSignup(c, models.SignupForm{}, nil)
}

// Signup registers a user, starts a session, and lands on the front page.
func (h *AuthHandler) Signup(c echo.Context) error {
	form, fieldErrs := ParseSignupForm(c)
	if fieldErrs != nil {
		return h.renderSignup(c, form, fieldErrs)
	}

	if _, err := h.userRepository.GetUserByUsername(form.Username); err == nil {
		return h.renderSignup(c, form, map[string]string{"Username": "That username is taken."})
	}
	if _, err := h.userRepository.GetUserByEmail(form.Email); err == nil {
		return h.renderSignup(c, form, map[string]string{"Email": "That email is already registered."})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to hash password")
	}

	user := &models.User{
		Username:     form.Username,
		Email:        form.Email,
		DisplayName:  form.DisplayName,
		PasswordHash: string(hash),
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		return httpError(err)
	}

	return h.startSession(c, user, "/")
}

// LoginForm renders the login form, keeping the next target.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return h.renderLogin(c, models.LoginForm{}, nil, c.QueryParam("next"))
}

// Login verifies credentials and redirects to the next target the
// caller was originally heading for, or the front page.
func (h *AuthHandler) Login(c echo.Context) error {
	next := c.FormValue("next")

	form, fieldErrs := ParseLoginForm(c)
	if fieldErrs != nil {
		return h.renderLogin(c, form, fieldErrs, next)
	}

	user, err := h.userRepository.GetUserByUsername(form.Username)
	if err == nil {
		err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password))
	}
	if err != nil {
		return h.renderLogin(c, form, map[string]string{"form": "Wrong username or password."}, next)
	}

	return h.startSession(c, user, next)
}

// Logout drops the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(middleware.ExpiredSessionCookie())
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) startSession(c echo.Context, user *models.User, next string) error {
	token, err := middleware.IssueSession(h.sessionSecret, user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue session")
	}
	c.SetCookie(middleware.SessionCookie(token))

	// Only same-site relative targets; anything else goes home.
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	return c.Redirect(http.StatusFound, next)
}

func (h *AuthHandler) renderSignup(c echo.Context, form models.SignupForm, fieldErrs map[string]string) error {
	if fieldErrs == nil {
		fieldErrs = map[string]string{}
	}
	return c.Render(http.StatusOK, "signup.html", echo.Map{
		"Title":  "Sign up",
		"User":   middleware.CurrentUser(c),
		"Form":   form,
		"Errors": fieldErrs,
	})
}

func (h *AuthHandler) renderLogin(c echo.Context, form models.LoginForm, fieldErrs map[string]string, next string) error {
	if fieldErrs == nil {
		fieldErrs = map[string]string{}
	}
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"Title":  "Log in",
		"User":   middleware.CurrentUser(c),
		"Form":   form,
		"Errors": fieldErrs,
		"Next":   next,
	})
}
