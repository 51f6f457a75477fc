package handler

import (
	"net/http"

	"github.com/Eursukkul/events-portal/internal/dto"
	"github.com/Eursukkul/events-portal/internal/repository"
	"github.com/Eursukkul/events-portal/internal/service"
	"github.com/labstack/echo/v4"
)

// AdminEnrollHandler manages enrollments and moderates reviews.
type AdminEnrollHandler struct {
	enrolls service.EnrollService
	reviews service.ReviewService
}

func NewAdminEnrollHandler(enrolls service.EnrollService, reviews service.ReviewService) *AdminEnrollHandler {
	return &AdminEnrollHandler{enrolls: enrolls, reviews: reviews}
}

func (h *AdminEnrollHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/enrolls", h.ListEnrolls)
	g.POST("/enrolls", h.CreateEnroll)
	g.DELETE("/enrolls/:id", h.DeleteEnroll)

	g.GET("/reviews", h.ListReviews)
	g.PUT("/reviews/:id", h.UpdateReview)
	g.DELETE("/reviews/:id", h.DeleteReview)
}

func (h *AdminEnrollHandler) ListEnrolls(c echo.Context) error {
	eventID, err := optionalUint(c, "event_id")
	if err != nil {
		return err
	}
	userID, err := optionalUint(c, "user_id")
	if err != nil {
		return err
	}

	enrolls, err := h.enrolls.ListEnrolls(c.Request().Context(), repository.EnrollFilter{EventID: eventID, UserID: userID})
	if err != nil {
		return err
	}

	resp := make([]dto.EnrollResponse, len(enrolls))
	for i, e := range enrolls {
		resp[i] = dto.NewEnrollResponse(e)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminEnrollHandler) CreateEnroll(c echo.Context) error {
	var req dto.EnrollRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	enroll, err := h.enrolls.CreateEnroll(c.Request().Context(), req.UserID, req.EventID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, dto.NewEnrollResponse(*enroll))
}

func (h *AdminEnrollHandler) DeleteEnroll(c echo.Context) error {
	id, err := parseID(c, "enroll")
	if err != nil {
		return err
	}
	if err := h.enrolls.DeleteEnroll(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminEnrollHandler) ListReviews(c echo.Context) error {
	eventID, err := optionalUint(c, "event_id")
	if err != nil {
		return err
	}
	userID, err := optionalUint(c, "user_id")
	if err != nil {
		return err
	}

	reviews, err := h.reviews.ListReviews(c.Request().Context(), repository.ReviewFilter{EventID: eventID, UserID: userID})
	if err != nil {
		return err
	}

	resp := make([]dto.AdminReviewResponse, len(reviews))
	for i, r := range reviews {
		resp[i] = dto.NewAdminReviewResponse(r)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminEnrollHandler) UpdateReview(c echo.Context) error {
	id, err := parseID(c, "review")
	if err != nil {
		return err
	}
	var req dto.ReviewUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviews.UpdateReview(c.Request().Context(), id, *req.Rate, req.Text)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, dto.NewAdminReviewResponse(*review))
}

func (h *AdminEnrollHandler) DeleteReview(c echo.Context) error {
	id, err := parseID(c, "review")
	if err != nil {
		return err
	}
	if err := h.reviews.DeleteReview(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
