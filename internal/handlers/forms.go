package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/scribehq/scribe/internal/models"
	"github.com/scribehq/scribe/internal/validators"
)

// Form handling is two-phase: these parsers bind and validate without
// side effects, returning the typed form plus a field → message map;
// persistence and the redirect decision stay in the handler.

func ParsePostForm(c echo.Context) (models.PostForm, map[string]string) {
	var form models.PostForm
	if err := c.Bind(&form); err != nil {
		return form, map[string]string{"form": "invalid form submission"}
	}
	if err := c.Validate(&form); err != nil {
		return form, validators.FieldErrors(err)
	}
	return form, nil
}

func ParseCommentForm(c echo.Context) (models.CommentForm, map[string]string) {
	var form models.CommentForm
	if err := c.Bind(&form); err != nil {
		return form, map[string]string{"form": "invalid form submission"}
	}
	if err := c.Validate(&form); err != nil {
		return form, validators.FieldErrors(err)
	}
	return form, nil
}

func ParseSignupForm(c echo.Context) (models.SignupForm, map[string]string) {
	var form models.SignupForm
	if err := c.Bind(&form); err != nil {
		return form, map[string]string{"form": "invalid form submission"}
	}
	if err := c.Validate(&form); err != nil {
		return form, validators.FieldErrors(err)
	}
	return form, nil
}

func ParseLoginForm(c echo.Context) (models.LoginForm, map[string]string) {
	var form models.LoginForm
	if err := c.Bind(&form); err != nil {
		return form, map[string]string{"form": "invalid form submission"}
	}
	if err := c.Validate(&form); err != nil {
		return form, validators.FieldErrors(err)
	}
	return form, nil
}
