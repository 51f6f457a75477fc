package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Eursukkul/events-portal/internal/dto"
	"github.com/Eursukkul/events-portal/internal/middleware"
	"github.com/Eursukkul/events-portal/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	msgUnauthenticated = "only registered users can leave reviews"
	msgMissingFields   = "rate and review text are required fields"
	msgDuplicate       = "you have already reviewed this event"
	msgCreateFailed    = "failed to create review"
)

// ReviewHandler accepts review submissions from the event detail page.
type ReviewHandler struct {
	svc    service.ReviewService
	logger *slog.Logger
}

func NewReviewHandler(svc service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, logger: logger}
}

func (h *ReviewHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/reviews/create/", h.Create)
}

// Create always answers 200; the outcome is carried in the ok and msg
// fields.
func (h *ReviewHandler) Create(c echo.Context) error {
	in := service.ReviewInput{
		Rate:    c.FormValue("rate"),
		Text:    c.FormValue("text"),
		EventID: c.FormValue("event_id"),
	}
	resp := dto.ReviewResponse{Rate: in.Rate, Text: in.Text}

	identity := middleware.IdentityFrom(c)
	if identity == nil {
		resp.Msg = msgUnauthenticated
		return c.JSON(http.StatusOK, resp)
	}
	resp.UserName = identity.DisplayName

	review, err := h.svc.SubmitReview(c.Request().Context(), identity, in)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, dto.NewReviewCreated(review, identity.DisplayName, in.Rate, in.Text))
	case errors.Is(err, service.ErrMissingFields):
		resp.Msg = msgMissingFields
	case errors.Is(err, service.ErrDuplicateReview):
		resp.Msg = msgDuplicate
	case errors.Is(err, service.ErrUnauthenticated):
		resp.Msg = msgUnauthenticated
	default:
		h.logger.Warn("review submission rejected",
			"user_id", identity.UserID,
			"event_id", in.EventID,
			"error", err,
		)
		resp.Msg = msgCreateFailed
	}
	return c.JSON(http.StatusOK, resp)
}
