package service

import (
	"context"
	"errors"
	"log/slog"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrFeatureNotFound  = errors.New("feature not found")
	ErrEnrollNotFound   = errors.New("enroll not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrUnauthenticated = errors.New("authentication required")
	ErrMissingFields   = errors.New("rate and text are required")
	ErrDuplicateReview = errors.New("review already exists for this event")
	ErrInvalidRate     = errors.New("rate must be an integer between 0 and 5")
	ErrInvalidEventID  = errors.New("invalid event id")
	ErrInvalidCapacity = errors.New("participants_number must be between 0 and 10000")
)

// Publisher emits domain events. Implemented by rabbitmq.Publisher.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// publish is best effort: a broker outage must not fail the request that
// already committed.
func publish(ctx context.Context, p Publisher, logger *slog.Logger, routingKey string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, routingKey, payload); err != nil {
		logger.Warn("publish domain event failed", "routing_key", routingKey, "error", err)
	}
}
