package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/scribehq/scribe/internal/cache"
	"github.com/scribehq/scribe/internal/metrics"
	"github.com/scribehq/scribe/internal/middleware"
	"github.com/scribehq/scribe/internal/models"
	"github.com/scribehq/scribe/internal/pagination"
	"github.com/scribehq/scribe/internal/repositories"
	"github.com/scribehq/scribe/internal/storage"
)

// indexCacheKey is the single slot for the rendered front page. The
// cache is keyed by route only in this variant: page number and viewer
// do not split it.
const indexCacheKey = "posts:index"

// PostHandler serves the listing pages and post create/edit/detail.
type PostHandler struct {
	postRepository    repositories.PostRepository
	groupRepository   repositories.GroupRepository
	userRepository    repositories.UserRepository
	commentRepository repositories.CommentRepository
	followRepository  repositories.FollowRepository
	images            storage.ImageStore
	pageCache         *cache.PageCache
	pageSize          int
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	groupRepo repositories.GroupRepository,
	userRepo repositories.UserRepository,
	commentRepo repositories.CommentRepository,
	followRepo repositories.FollowRepository,
	images storage.ImageStore,
	pageCache *cache.PageCache,
	pageSize int,
) *PostHandler {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &PostHandler{
		postRepository:    postRepo,
		groupRepository:   groupRepo,
		userRepository:    userRepo,
		commentRepository: commentRepo,
		followRepository:  followRepo,
		images:            images,
		pageCache:         pageCache,
		pageSize:          pageSize,
	}
}

// RegisterPublicRoutes registers the routes anyone may view.
func (h *PostHandler) RegisterPublicRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/group/:slug/", h.GroupPosts)
	e.GET("/profile/:username/", h.Profile)
	e.GET("/posts/:id/", h.PostDetail)
}

// RegisterProtectedRoutes registers the routes that require a session.
func (h *PostHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/create/", h.CreatePostForm)
	g.POST("/create/", h.CreatePost)
	g.GET("/posts/:id/edit/", h.EditPostForm)
	g.POST("/posts/:id/edit/", h.EditPost)
	g.GET("/follow/", h.FollowIndex)
}

// Index renders the paginated global feed. The rendered body is cached
// whole: within the TTL every request gets the same bytes back, new and
// deleted posts included, until expiry or an explicit clear.
func (h *PostHandler) Index(c echo.Context) error {
	if body, ok := h.pageCache.Get(indexCacheKey); ok {
		metrics.PageCacheHits.Inc()
		return c.HTMLBlob(http.StatusOK, body)
	}
	metrics.PageCacheMisses.Inc()

	total, err := h.postRepository.CountAllPosts()
	if err != nil {
		return httpError(err)
	}
	page := pagination.New(total, pageNumber(c), h.pageSize)

	posts, err := h.postRepository.ListAllPosts(page.Limit, page.Offset)
	if err != nil {
		return httpError(err)
	}

	body, err := h.renderToBytes(c, "index.html", echo.Map{
		"Title": "Latest posts",
		"User":  middleware.CurrentUser(c),
		"Posts": posts,
		"Page":  page,
	})
	if err != nil {
		return err
	}

	h.pageCache.Set(indexCacheKey, body)
	return c.HTMLBlob(http.StatusOK, body)
}

// GroupPosts renders a group's feed; unknown slugs 404.
func (h *PostHandler) GroupPosts(c echo.Context) error {
	group, err := h.groupRepository.GetGroupBySlug(c.Param("slug"))
	if err != nil {
		return httpError(err)
	}

	total, err := h.postRepository.CountPostsByGroup(group.ID)
	if err != nil {
		return httpError(err)
	}
	page := pagination.New(total, pageNumber(c), h.pageSize)

	posts, err := h.postRepository.ListPostsByGroup(group.ID, page.Limit, page.Offset)
	if err != nil {
		return httpError(err)
	}

	return c.Render(http.StatusOK, "group_list.html", echo.Map{
		"Title": group.Title,
		"User":  middleware.CurrentUser(c),
		"Group": group,
		"Posts": posts,
		"Page":  page,
	})
}

// Profile renders an author's feed plus the viewer's follow status.
func (h *PostHandler) Profile(c echo.Context) error {
	author, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return httpError(err)
	}

	total, err := h.postRepository.CountPostsByAuthor(author.ID)
	if err != nil {
		return httpError(err)
	}
	page := pagination.New(total, pageNumber(c), h.pageSize)

	posts, err := h.postRepository.ListPostsByAuthor(author.ID, page.Limit, page.Offset)
	if err != nil {
		return httpError(err)
	}

	// Anonymous viewers are never following anyone.
	following := false
	if user := middleware.CurrentUser(c); user != nil {
		following, err = h.followRepository.IsFollowing(user.ID, author.ID)
		if err != nil {
			return httpError(err)
		}
	}

	return c.Render(http.StatusOK, "profile.html", echo.Map{
		"Title":     author.Username,
		"User":      middleware.CurrentUser(c),
		"Author":    author,
		"Posts":     posts,
		"Page":      page,
		"PostCount": total,
		"Following": following,
	})
}

// PostDetail renders a single post with its comments and comment form.
func (h *PostHandler) PostDetail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		return httpError(err)
	}

	comments, err := h.commentRepository.ListCommentsByPost(post.ID)
	if err != nil {
		return httpError(err)
	}

	postCount, err := h.postRepository.CountPostsByAuthor(post.AuthorID)
	if err != nil {
		return httpError(err)
	}

	commentCount, err := h.commentRepository.CountCommentsByPost(post.ID)
	if err != nil {
		return httpError(err)
	}

	return c.Render(http.StatusOK, "post_detail.html", echo.Map{
		"Title":        "Post",
		"User":         middleware.CurrentUser(c),
		"Post":         post,
		"Comments":     comments,
		"PostCount":    postCount,
		"CommentCount": commentCount,
		"Errors":       map[string]string{},
	})
}

// FollowIndex renders the merged feed of followed authors' posts.
func (h *PostHandler) FollowIndex(c echo.Context) error {
	user := middleware.CurrentUser(c)

	total, err := h.postRepository.CountPostsByFollowed(user.ID)
	if err != nil {
		return httpError(err)
	}
	page := pagination.New(total, pageNumber(c), h.pageSize)

	posts, err := h.postRepository.ListPostsByFollowed(user.ID, page.Limit, page.Offset)
	if err != nil {
		return httpError(err)
	}

	authors, err := h.followRepository.GetFollowedAuthors(user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.Render(http.StatusOK, "follow.html", echo.Map{
		"Title":   "My feed",
		"User":    user,
		"Posts":   posts,
		"Page":    page,
		"Authors": authors,
	})
}

// CreatePostForm renders the empty create form.
func (h *PostHandler) CreatePostForm(c echo.Context) error {
	return h.renderPostForm(c, models.PostForm{}, nil, false, 0)
}

// CreatePost validates the submitted form and persists the post. The
// session user is always the author regardless of the payload. A valid
// submission redirects to the author's profile; an invalid one
// re-renders the form with field messages.
func (h *PostHandler) CreatePost(c echo.Context) error {
	user := middleware.CurrentUser(c)

	form, fieldErrs := ParsePostForm(c)
	if fieldErrs != nil {
		return h.renderPostForm(c, form, fieldErrs, false, 0)
	}

	post := &models.Post{
		Text:     form.Text,
		AuthorID: user.ID,
	}

	if form.GroupSlug != "" {
		group, err := h.groupRepository.GetGroupBySlug(form.GroupSlug)
		if err != nil {
			if err == repositories.ErrNotFound {
				return h.renderPostForm(c, form, map[string]string{"GroupSlug": "Unknown group."}, false, 0)
			}
			return httpError(err)
		}
		post.GroupID = &group.ID
	}

	imagePath, err := h.saveImage(c)
	if err != nil {
		return h.renderPostForm(c, form, map[string]string{"Image": "Could not store the image."}, false, 0)
	}
	post.Image = imagePath

	if err := h.postRepository.CreatePost(post); err != nil {
		return httpError(err)
	}
	metrics.PostsCreated.Inc()

	return c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// EditPostForm renders the edit form, but only to the post's author.
// Any other logged-in user lands on the read-only detail view.
func (h *PostHandler) EditPostForm(c echo.Context) error {
	post, redirect, err := h.editablePost(c)
	if err != nil {
		return err
	}
	if redirect != "" {
		return c.Redirect(http.StatusFound, redirect)
	}

	form := models.PostForm{Text: post.Text}
	if post.Group != nil {
		form.GroupSlug = post.Group.Slug
	}
	return h.renderPostForm(c, form, nil, true, post.ID)
}

// EditPost applies a valid submission to the author's own post and
// redirects to the detail view. CreatedAt never changes.
func (h *PostHandler) EditPost(c echo.Context) error {
	post, redirect, err := h.editablePost(c)
	if err != nil {
		return err
	}
	if redirect != "" {
		return c.Redirect(http.StatusFound, redirect)
	}

	form, fieldErrs := ParsePostForm(c)
	if fieldErrs != nil {
		return h.renderPostForm(c, form, fieldErrs, true, post.ID)
	}

	post.Text = form.Text
	post.GroupID = nil
	if form.GroupSlug != "" {
		group, err := h.groupRepository.GetGroupBySlug(form.GroupSlug)
		if err != nil {
			if err == repositories.ErrNotFound {
				return h.renderPostForm(c, form, map[string]string{"GroupSlug": "Unknown group."}, true, post.ID)
			}
			return httpError(err)
		}
		post.GroupID = &group.ID
	}

	if imagePath, err := h.saveImage(c); err != nil {
		return h.renderPostForm(c, form, map[string]string{"Image": "Could not store the image."}, true, post.ID)
	} else if imagePath != "" {
		post.Image = imagePath
	}

	if err := h.postRepository.UpdatePost(post); err != nil {
		return httpError(err)
	}

	return c.Redirect(http.StatusFound, detailURL(post.ID))
}

// editablePost loads the requested post and decides whether the caller
// may edit it. A non-author gets a redirect target to the detail view
// instead of an error page.
func (h *PostHandler) editablePost(c echo.Context) (*models.Post, string, error) {
	id, err := parseID(c, "id")
	if err != nil {
		return nil, "", err
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		return nil, "", httpError(err)
	}

	if user := middleware.CurrentUser(c); user.ID != post.AuthorID {
		return nil, detailURL(post.ID), nil
	}
	return post, "", nil
}

func (h *PostHandler) renderPostForm(c echo.Context, form models.PostForm, fieldErrs map[string]string, isEdit bool, postID uint) error {
	groups, err := h.groupRepository.ListGroups()
	if err != nil {
		return httpError(err)
	}
	title := "New post"
	if isEdit {
		title = "Edit post"
	}
	if fieldErrs == nil {
		fieldErrs = map[string]string{}
	}
	return c.Render(http.StatusOK, "create_post.html", echo.Map{
		"Title":  title,
		"User":   middleware.CurrentUser(c),
		"Form":   form,
		"Errors": fieldErrs,
		"Groups": groups,
		"IsEdit": isEdit,
		"PostID": postID,
	})
}

// saveImage stores an uploaded image, if any. A missing file part is
// fine: the attachment is optional.
func (h *PostHandler) saveImage(c echo.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return h.images.Save(c.Request().Context(), fh.Filename,
		fh.Header.Get("Content-Type"), src, fh.Size)
}

func (h *PostHandler) renderToBytes(c echo.Context, name string, data echo.Map) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Echo().Renderer.Render(&buf, name, data, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func detailURL(postID uint) string {
	return "/posts/" + strconv.FormatUint(uint64(postID), 10) + "/"
}
