package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Eursukkul/events-portal/internal/dto"
	"github.com/Eursukkul/events-portal/internal/occupancy"
	"github.com/Eursukkul/events-portal/internal/service"
	"github.com/labstack/echo/v4"
)

// AdminEventHandler is the staff-only event management API.
type AdminEventHandler struct {
	svc service.EventService
}

func NewAdminEventHandler(svc service.EventService) *AdminEventHandler {
	return &AdminEventHandler{svc: svc}
}

func (h *AdminEventHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/events", h.ListEvents)
	g.GET("/events/:id", h.GetEvent)
	g.POST("/events", h.CreateEvent)
	g.PUT("/events/:id", h.UpdateEvent)
	g.DELETE("/events/:id", h.DeleteEvent)
}

func (h *AdminEventHandler) ListEvents(c echo.Context) error {
	q, err := eventQuery(c)
	if err != nil {
		return err
	}

	events, err := h.svc.ListEvents(c.Request().Context(), q)
	if err != nil {
		return serviceError(err)
	}

	resp := make([]dto.AdminEventRow, len(events))
	for i, ov := range events {
		resp[i] = dto.NewAdminEventRow(ov)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminEventHandler) GetEvent(c echo.Context) error {
	id, err := parseID(c, "event")
	if err != nil {
		return err
	}

	ov, err := h.svc.GetEvent(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, dto.NewAdminEventRow(*ov))
}

func (h *AdminEventHandler) CreateEvent(c echo.Context) error {
	var req dto.EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event := req.ToModel()
	if err := h.svc.CreateEvent(c.Request().Context(), event, req.FeatureIDs); err != nil {
		return serviceError(err)
	}

	ov, err := h.svc.GetEvent(c.Request().Context(), event.ID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, dto.NewAdminEventRow(*ov))
}

func (h *AdminEventHandler) UpdateEvent(c echo.Context) error {
	id, err := parseID(c, "event")
	if err != nil {
		return err
	}
	var req dto.EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.svc.UpdateEvent(c.Request().Context(), id, req.ToModel(), req.FeatureIDs); err != nil {
		return serviceError(err)
	}

	ov, err := h.svc.GetEvent(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, dto.NewAdminEventRow(*ov))
}

func (h *AdminEventHandler) DeleteEvent(c echo.Context) error {
	id, err := parseID(c, "event")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteEvent(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func eventQuery(c echo.Context) (service.EventQuery, error) {
	var q service.EventQuery
	q.Query = strings.TrimSpace(c.QueryParam("q"))

	categoryID, err := optionalUint(c, "category_id")
	if err != nil {
		return q, err
	}
	q.CategoryID = categoryID

	if raw := c.QueryParam("is_private"); raw != "" {
		private, err := strconv.ParseBool(raw)
		if err != nil {
			return q, echo.NewHTTPError(http.StatusBadRequest, "invalid is_private")
		}
		q.IsPrivate = &private
	}

	if raw := c.QueryParam("event_occupancy"); raw != "" {
		b, err := occupancy.ParseBucket(raw)
		if err != nil {
			return q, echo.NewHTTPError(http.StatusBadRequest, "event_occupancy must be one of 0, 1, 2")
		}
		q.Occupancy = &b
	}
	return q, nil
}
