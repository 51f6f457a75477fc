package handler

import (
	"net/http"
	"strconv"

	"github.com/Eursukkul/events-portal/internal/dto"
	"github.com/Eursukkul/events-portal/internal/service"
	"github.com/labstack/echo/v4"
)

// PageHandler serves the public browse and detail views.
type PageHandler struct {
	svc    service.EventService
	assets dto.AssetURLs
}

func NewPageHandler(svc service.EventService, assets dto.AssetURLs) *PageHandler {
	return &PageHandler{svc: svc, assets: assets}
}

func (h *PageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.Browse)
	g.GET("/:id/", h.Detail)
}

func (h *PageHandler) Browse(c echo.Context) error {
	res, err := h.svc.Browse(c.Request().Context())
	if err != nil {
		return err
	}

	resp := dto.BrowseResponse{
		Events:     make([]dto.EventSummary, len(res.Events)),
		Categories: res.Categories,
		Features:   res.Features,
	}
	for i, ov := range res.Events {
		resp.Events[i] = dto.NewEventSummary(ov, h.assets)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PageHandler) Detail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "event not found")
	}

	ov, err := h.svc.Detail(c.Request().Context(), uint(id))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, dto.NewEventDetail(*ov, h.assets))
}
