package handler

import (
	"net/http"

	"github.com/Eursukkul/events-portal/internal/dto"
	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/Eursukkul/events-portal/internal/service"
	"github.com/labstack/echo/v4"
)

// AdminCategoryHandler manages categories and features, the two lookup
// tables events refer to.
type AdminCategoryHandler struct {
	categories service.CategoryService
	features   service.FeatureService
}

func NewAdminCategoryHandler(categories service.CategoryService, features service.FeatureService) *AdminCategoryHandler {
	return &AdminCategoryHandler{categories: categories, features: features}
}

func (h *AdminCategoryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/categories", h.ListCategories)
	g.GET("/categories/:id", h.GetCategory)
	g.POST("/categories", h.CreateCategory)
	g.PUT("/categories/:id", h.UpdateCategory)
	g.DELETE("/categories/:id", h.DeleteCategory)

	g.GET("/features", h.ListFeatures)
	g.POST("/features", h.CreateFeature)
	g.PUT("/features/:id", h.UpdateFeature)
	g.DELETE("/features/:id", h.DeleteFeature)
}

func (h *AdminCategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categories.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]dto.CategoryResponse, len(categories))
	for i, cat := range categories {
		resp[i] = dto.NewCategoryResponse(cat)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminCategoryHandler) GetCategory(c echo.Context) error {
	id, err := parseID(c, "category")
	if err != nil {
		return err
	}
	category, err := h.categories.GetCategory(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *AdminCategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category := &models.Category{Title: req.Title}
	if err := h.categories.CreateCategory(c.Request().Context(), category); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *AdminCategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := parseID(c, "category")
	if err != nil {
		return err
	}
	var req dto.CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category := &models.Category{ID: id, Title: req.Title}
	if err := h.categories.UpdateCategory(c.Request().Context(), category); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *AdminCategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := parseID(c, "category")
	if err != nil {
		return err
	}
	if err := h.categories.DeleteCategory(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminCategoryHandler) ListFeatures(c echo.Context) error {
	features, err := h.features.ListFeatures(c.Request().Context())
	if err != nil {
		return err
	}
	if features == nil {
		features = []models.Feature{}
	}
	return c.JSON(http.StatusOK, features)
}

func (h *AdminCategoryHandler) CreateFeature(c echo.Context) error {
	var req dto.FeatureRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	feature := &models.Feature{Title: req.Title}
	if err := h.features.CreateFeature(c.Request().Context(), feature); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, feature)
}

func (h *AdminCategoryHandler) UpdateFeature(c echo.Context) error {
	id, err := parseID(c, "feature")
	if err != nil {
		return err
	}
	var req dto.FeatureRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	feature := &models.Feature{ID: id, Title: req.Title}
	if err := h.features.UpdateFeature(c.Request().Context(), feature); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, feature)
}

func (h *AdminCategoryHandler) DeleteFeature(c echo.Context) error {
	id, err := parseID(c, "feature")
	if err != nil {
		return err
	}
	if err := h.features.DeleteFeature(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
