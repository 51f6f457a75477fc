package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/Eursukkul/events-portal/internal/repository"
	"github.com/Eursukkul/events-portal/pkg/rabbitmq"
)

type EnrollService interface {
	ListEnrolls(ctx context.Context, filter repository.EnrollFilter) ([]models.Enroll, error)
	CreateEnroll(ctx context.Context, userID, eventID uint) (*models.Enroll, error)
	DeleteEnroll(ctx context.Context, id uint) error
}

type enrollService struct {
	enrolls   repository.EnrollRepository
	events    repository.EventRepository
	users     repository.UserRepository
	publisher Publisher
	logger    *slog.Logger
}

func NewEnrollService(enrolls repository.EnrollRepository, events repository.EventRepository, users repository.UserRepository, publisher Publisher, logger *slog.Logger) EnrollService {
	return &enrollService{enrolls: enrolls, events: events, users: users, publisher: publisher, logger: logger}
}

func (s *enrollService) ListEnrolls(ctx context.Context, filter repository.EnrollFilter) ([]models.Enroll, error) {
	return s.enrolls.Find(ctx, filter)
}

// CreateEnroll registers the user for the event. Repeated enrollments of the
// same user are accepted.
func (s *enrollService) CreateEnroll(ctx context.Context, userID, eventID uint) (*models.Enroll, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, notFound(err, ErrEventNotFound)
	}

	enroll := &models.Enroll{UserID: &user.ID, EventID: &event.ID}
	if err := s.enrolls.Create(ctx, enroll); err != nil {
		return nil, fmt.Errorf("create enroll: %w", err)
	}
	enroll.User = user
	enroll.Event = event

	publish(ctx, s.publisher, s.logger, rabbitmq.KeyEnrollCreated, map[string]any{
		"id":       enroll.ID,
		"user_id":  user.ID,
		"event_id": event.ID,
		"created":  enroll.CreatedAt,
	})
	return enroll, nil
}

func (s *enrollService) DeleteEnroll(ctx context.Context, id uint) error {
	if err := s.enrolls.Delete(ctx, id); err != nil {
		return notFound(err, ErrEnrollNotFound)
	}
	return nil
}
