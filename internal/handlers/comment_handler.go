package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/scribehq/scribe/internal/metrics"
	"github.com/scribehq/scribe/internal/middleware"
	"github.com/scribehq/scribe/internal/models"
	"github.com/scribehq/scribe/internal/repositories"
)

// CommentHandler handles adding comments to posts. Comments have no
// edit or delete path.
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterProtectedRoutes registers comment routes on the session group.
func (h *CommentHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/posts/:id/comment/", h.AddComment)
}

// AddComment attaches a comment to an existing post. The session user
// is always the comment's author; the target post must exist. Valid or
// not, the caller lands back on the detail page — an invalid form
// simply adds nothing, like the reference behavior.
func (h *CommentHandler) AddComment(c echo.Context) error {
	user := middleware.CurrentUser(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		return httpError(err)
	}

	form, fieldErrs := ParseCommentForm(c)
	if fieldErrs == nil {
		comment := &models.Comment{
			Text:     form.Text,
			PostID:   post.ID,
			AuthorID: user.ID,
		}
		if err := h.commentRepository.CreateComment(comment); err != nil {
			return httpError(err)
		}
		metrics.CommentsCreated.Inc()
	}

	return c.Redirect(http.StatusFound, detailURL(post.ID))
}
