package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

type TagHandler struct {
	tagService ports.TagService
}

func NewTagHandler(tagService ports.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

type tagRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type tagListResponse struct {
	Items []domain.Tag `json:"items"`
	Total int64        `json:"total"`
	Skip  int          `json:"skip"`
	Limit int          `json:"limit"`
}

// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Success      200  {object}  tagListResponse
// @Security     BearerAuth
// @Router       /tags [get]
func (h *TagHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	tags, total, err := h.tagService.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tagListResponse{Items: tags, Total: total, Skip: skip, Limit: limit})
}

// @Summary      Get a tag
// @Tags         tags
// @Produce      json
// @Param        id  path      int  true  "Tag ID"
// @Success      200  {object}  domain.Tag
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /tags/{id} [get]
func (h *TagHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	tag, err := h.tagService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tag)
}

// @Summary      Create a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        body  body      tagRequest  true  "Tag"
// @Success      201   {object}  domain.Tag
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /tags [post]
func (h *TagHandler) Create(c echo.Context) error {
	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tag, err := h.tagService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tag)
}

// @Summary      Rename a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        id    path      int         true  "Tag ID"
// @Param        body  body      tagRequest  true  "New name"
// @Success      200   {object}  domain.Tag
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /tags/{id} [put]
func (h *TagHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tag, err := h.tagService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tag)
}

// @Summary      Delete a tag
// @Tags         tags
// @Param        id  path  int  true  "Tag ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /tags/{id} [delete]
func (h *TagHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.tagService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
