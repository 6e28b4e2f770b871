package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastadmin/blog-api/internal/core/domain"
	"github.com/fastadmin/blog-api/internal/core/ports"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
}

type categoryUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
}

type categoryListResponse struct {
	Items []domain.Category `json:"items"`
	Total int64             `json:"total"`
	Skip  int               `json:"skip"`
	Limit int               `json:"limit"`
}

// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  categoryListResponse
// @Security     BearerAuth
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	categories, total, err := h.categoryService.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryListResponse{Items: categories, Total: total, Skip: skip, Limit: limit})
}

// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        id  path      int  true  "Category ID"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	category, err := h.categoryService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      categoryCreateRequest  true  "Category"
// @Success      201   {object}  domain.Category
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Category ID"
// @Param        body  body      categoryUpdateRequest  true  "Fields to update"
// @Success      200   {object}  domain.Category
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req categoryUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Update(c.Request().Context(), id, ports.CategoryUpdateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// @Summary      Delete a category
// @Tags         categories
// @Param        id  path  int  true  "Category ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
