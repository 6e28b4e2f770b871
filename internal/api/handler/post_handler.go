package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type postCreateRequest struct {
	Title           string  `json:"title" validate:"required,max=200"`
	ContentMarkdown string  `json:"content_markdown" validate:"required"`
	Summary         *string `json:"summary,omitempty"`
	Published       bool    `json:"published"`
	CategoryID      *int64  `json:"category_id,omitempty"`
	TagIDs          []int64 `json:"tag_ids,omitempty"`
}

type postUpdateRequest struct {
	Title           *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	ContentMarkdown *string  `json:"content_markdown,omitempty"`
	Summary         *string  `json:"summary,omitempty"`
	Published       *bool    `json:"published,omitempty"`
	CategoryID      *int64   `json:"category_id,omitempty"`
	TagIDs          *[]int64 `json:"tag_ids,omitempty"`
}

type postListResponse struct {
	Items []domain.Post `json:"items"`
	Total int64         `json:"total"`
	Skip  int           `json:"skip"`
	Limit int           `json:"limit"`
}

// List returns a filtered page of posts.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        skip         query     int     false  "Offset"
// @Param        limit        query     int     false  "Page size"
// @Param        search       query     string  false  "Match in title or body"
// @Param        category_id  query     int     false  "Filter by category"
// @Param        tag_id       query     int     false  "Filter by tag"
// @Param        published    query     bool    false  "Filter by published state"
// @Success      200  {object}  postListResponse
// @Security     BearerAuth
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	f := ports.PostListFilter{Skip: skip, Limit: limit}

	if s := c.QueryParam("search"); s != "" {
		f.Search = &s
	}
	if v := c.QueryParam("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category_id")
		}
		f.CategoryID = &id
	}
	if v := c.QueryParam("tag_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid tag_id")
		}
		f.TagID = &id
	}
	if v := c.QueryParam("published"); v != "" {
		published, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid published")
		}
		f.Published = &published
	}

	posts, total, err := h.postService.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postListResponse{Items: posts, Total: total, Skip: skip, Limit: limit})
}

// Get returns a single post with its tags.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id  path      int  true  "Post ID"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	post, err := h.postService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create stores a new post authored by the current user.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      postCreateRequest  true  "Post content"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req postCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Create(c.Request().Context(), ports.PostCreateInput{
		Title:           req.Title,
		ContentMarkdown: req.ContentMarkdown,
		Summary:         req.Summary,
		Published:       req.Published,
		CategoryID:      req.CategoryID,
		TagIDs:          req.TagIDs,
	}, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// Update applies a partial update to a post.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Post ID"
// @Param        body  body      postUpdateRequest  true  "Fields to update"
// @Success      200   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req postUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Update(c.Request().Context(), id, ports.PostUpdateInput{
		Title:           req.Title,
		ContentMarkdown: req.ContentMarkdown,
		Summary:         req.Summary,
		Published:       req.Published,
		CategoryID:      req.CategoryID,
		TagIDs:          req.TagIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete removes a post and its tag links.
//
// @Summary      Delete a post
// @Tags         posts
// @Param        id  path  int  true  "Post ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.postService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
