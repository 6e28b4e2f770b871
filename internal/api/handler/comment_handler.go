package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type commentCreateRequest struct {
	PostID  int64  `json:"post_id" validate:"required,gte=1"`
	Content string `json:"content" validate:"required"`
}

type commentUpdateRequest struct {
	Content string `json:"content" validate:"required"`
}

type commentListResponse struct {
	Items []domain.Comment `json:"items"`
	Total int64            `json:"total"`
	Skip  int              `json:"skip"`
	Limit int              `json:"limit"`
}

// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Param        post_id  query     int  false  "Filter by post"
// @Success      200      {object}  commentListResponse
// @Security     BearerAuth
// @Router       /comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	var postID *int64
	if v := c.QueryParam("post_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid post_id")
		}
		postID = &id
	}

	comments, total, err := h.commentService.List(c.Request().Context(), skip, limit, postID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, commentListResponse{Items: comments, Total: total, Skip: skip, Limit: limit})
}

// @Summary      Get a comment
// @Tags         comments
// @Produce      json
// @Param        id  path      int  true  "Comment ID"
// @Success      200  {object}  domain.Comment
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /comments/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	comment, err := h.commentService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      commentCreateRequest  true  "Comment"
// @Success      201   {object}  domain.Comment
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req commentCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Create(c.Request().Context(), req.PostID, req.Content, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Comment ID"
// @Param        body  body      commentUpdateRequest  true  "New content"
// @Success      200   {object}  domain.Comment
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.checkOwnership(c, id); err != nil {
		return err
	}
	var req commentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Update(c.Request().Context(), id, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// @Summary      Delete a comment
// @Tags         comments
// @Param        id  path  int  true  "Comment ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.checkOwnership(c, id); err != nil {
		return err
	}
	if err := h.commentService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// checkOwnership restricts comment edits to the author or an admin.
func (h *CommentHandler) checkOwnership(c echo.Context, id int64) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	comment, err := h.commentService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if comment.AuthorID != user.ID && !user.IsAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "not the comment author")
	}
	return nil
}
