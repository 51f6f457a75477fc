package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Eursukkul/events-portal/internal/auth"
	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/Eursukkul/events-portal/internal/repository"
	"github.com/Eursukkul/events-portal/pkg/rabbitmq"
	"gorm.io/gorm"
)

// ReviewInput carries the raw submitted form values.
type ReviewInput struct {
	Rate    string
	Text    string
	EventID string
}

type ReviewService interface {
	SubmitReview(ctx context.Context, identity *auth.Identity, in ReviewInput) (*models.Review, error)
	ListReviews(ctx context.Context, filter repository.ReviewFilter) ([]models.Review, error)
	UpdateReview(ctx context.Context, id uint, rate int, text string) (*models.Review, error)
	DeleteReview(ctx context.Context, id uint) error
}

type reviewService struct {
	reviews   repository.ReviewRepository
	events    repository.EventRepository
	publisher Publisher
	logger    *slog.Logger
}

func NewReviewService(reviews repository.ReviewRepository, events repository.EventRepository, publisher Publisher, logger *slog.Logger) ReviewService {
	return &reviewService{reviews: reviews, events: events, publisher: publisher, logger: logger}
}

// SubmitReview stores the caller's single review of an event. The existence
// check gives the friendly duplicate error; the unique index on
// (user_id, event_id) catches concurrent submissions that pass it.
func (s *reviewService) SubmitReview(ctx context.Context, identity *auth.Identity, in ReviewInput) (*models.Review, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}
	if in.Rate == "" || in.Text == "" {
		return nil, ErrMissingFields
	}

	eventID, err := strconv.ParseUint(strings.TrimSpace(in.EventID), 10, 64)
	if err != nil || eventID == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEventID, in.EventID)
	}

	exists, err := s.reviews.ExistsForUserAndEvent(ctx, identity.UserID, uint(eventID))
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	if _, err := s.events.FindByID(ctx, uint(eventID)); err != nil {
		return nil, notFound(err, ErrEventNotFound)
	}

	rate, err := parseRate(in.Rate)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:  identity.UserID,
		EventID: uint(eventID),
		Rate:    rate,
		Text:    in.Text,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	publish(ctx, s.publisher, s.logger, rabbitmq.KeyReviewCreated, map[string]any{
		"id":       review.ID,
		"user_id":  review.UserID,
		"event_id": review.EventID,
		"rate":     review.Rate,
		"created":  review.CreatedAt,
	})
	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context, filter repository.ReviewFilter) ([]models.Review, error) {
	return s.reviews.Find(ctx, filter)
}

func (s *reviewService) UpdateReview(ctx context.Context, id uint, rate int, text string) (*models.Review, error) {
	if rate < models.MinRate || rate > models.MaxRate {
		return nil, ErrInvalidRate
	}
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}

	review.Rate = rate
	review.Text = text
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}
	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id uint) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		return notFound(err, ErrReviewNotFound)
	}
	return nil
}

func parseRate(raw string) (int, error) {
	rate, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRate, raw)
	}
	if rate < models.MinRate || rate > models.MaxRate {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}
	return rate, nil
}
