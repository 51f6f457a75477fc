package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Eursukkul/events-portal/internal/service"
	"github.com/labstack/echo/v4"
)

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" id")
	}
	return uint(id), nil
}

// optionalUint reads a numeric query parameter; absent means no filter.
func optionalUint(c echo.Context, param string) (*uint, error) {
	raw := c.QueryParam(param)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+param)
	}
	id := uint(v)
	return &id, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// serviceError maps service sentinels to HTTP errors. Anything unknown is
// left for the error handler to log as a 500.
func serviceError(err error) error {
	switch {
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrFeatureNotFound),
		errors.Is(err, service.ErrEnrollNotFound),
		errors.Is(err, service.ErrReviewNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCapacity),
		errors.Is(err, service.ErrInvalidRate):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrDuplicateReview):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return err
}
