package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kosaboard/board-api/internal/api/metrics"
	"github.com/kosaboard/board-api/internal/core/ports"
)

// PostHandler handles HTTP requests for board posts.
type PostHandler struct {
	posts ports.PostService
}

func NewPostHandler(posts ports.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// List returns all posts newest-first. Public route.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  apiResponse{data=[]postSummaryResponse}
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	feed, err := h.posts.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toPostSummaryResponses(feed), "post list")
}

// Get returns the full detail of one post.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  apiResponse{data=postDetailResponse}
// @Failure      401  {object}  errorEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	detail, err := h.posts.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, toPostDetailResponse(detail), "post detail")
}

// Create persists a post authored by the authenticated caller.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  apiResponse{data=postDetailResponse}
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.posts.Create(c.Request().Context(), ports.CreatePostInput{
		Title:          req.Title,
		Content:        req.Content,
		AuthorUsername: identity.Username,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return respond(c, http.StatusCreated, toPostDetailResponse(detail), "post created")
}
