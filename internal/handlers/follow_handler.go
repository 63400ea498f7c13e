package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scribehq/scribe/internal/metrics"
	"github.com/scribehq/scribe/internal/middleware"
	"github.com/scribehq/scribe/internal/models"
	"github.com/scribehq/scribe/internal/repositories"
)

// FollowHandler handles the follow/unfollow state transitions.
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterProtectedRoutes registers follow routes on the session group.
func (h *FollowHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/profile/:username/follow/", h.Follow)
	g.POST("/profile/:username/unfollow/", h.Unfollow)
}

// Follow creates the (user, author) edge and redirects to the followed
// feed. Already-following and self-follow are silent no-ops: repeating
// the call never yields a second edge or an error.
func (h *FollowHandler) Follow(c echo.Context) error {
	user := middleware.CurrentUser(c)

	author, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return httpError(err)
	}

	if user.ID != author.ID {
		following, err := h.followRepository.IsFollowing(user.ID, author.ID)
		if err != nil {
			return httpError(err)
		}
		if !following {
			follow := &models.Follow{UserID: user.ID, AuthorID: author.ID}
			if err := h.followRepository.CreateFollow(follow); err != nil {
				return httpError(err)
			}
			metrics.FollowsCreated.Inc()
		}
	}

	return c.Redirect(http.StatusFound, "/follow/")
}

// Unfollow removes the edge if present and redirects back to the
// author's profile. A missing edge is a no-op, not an error.
func (h *FollowHandler) Unfollow(c echo.Context) error {
	user := middleware.CurrentUser(c)

	author, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return httpError(err)
	}

	if err := h.followRepository.DeleteFollow(user.ID, author.ID); err != nil {
		return httpError(err)
	}

	return c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
