package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/Eursukkul/events-portal/internal/occupancy"
	"github.com/Eursukkul/events-portal/internal/repository"
	"github.com/Eursukkul/events-portal/pkg/rabbitmq"
	"gorm.io/gorm"
)

// EventQuery narrows the admin event list. Occupancy is applied after the
// enroll counts are loaded.
type EventQuery struct {
	repository.EventFilter
	Occupancy *occupancy.Bucket
}

type BrowseResult struct {
	Events     []models.EventOverview
	Categories []models.Category
	Features   []models.Feature
}

type EventService interface {
	Browse(ctx context.Context) (*BrowseResult, error)
	Detail(ctx context.Context, id uint) (*models.EventOverview, error)
	ListEvents(ctx context.Context, q EventQuery) ([]models.EventOverview, error)
	GetEvent(ctx context.Context, id uint) (*models.EventOverview, error)
	CreateEvent(ctx context.Context, event *models.Event, featureIDs []uint) error
	UpdateEvent(ctx context.Context, id uint, changes *models.Event, featureIDs []uint) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}

type eventService struct {
	events     repository.EventRepository
	categories repository.CategoryRepository
	features   repository.FeatureRepository
	enrolls    repository.EnrollRepository
	reviews    repository.ReviewRepository
	publisher  Publisher
	logger     *slog.Logger
}

type EventDeps struct {
	Events     repository.EventRepository
	Categories repository.CategoryRepository
	Features   repository.FeatureRepository
	Enrolls    repository.EnrollRepository
	Reviews    repository.ReviewRepository
	Publisher  Publisher
	Logger     *slog.Logger
}

func NewEventService(d EventDeps) EventService {
	return &eventService{
		events:     d.Events,
		categories: d.Categories,
		features:   d.Features,
		enrolls:    d.Enrolls,
		reviews:    d.Reviews,
		publisher:  d.Publisher,
		logger:     d.Logger,
	}
}

type eventMessage struct {
	ID                 uint      `json:"id"`
	Title              string    `json:"title"`
	DateStart          time.Time `json:"date_start"`
	ParticipantsNumber int       `json:"participants_number"`
	CategoryID         *uint     `json:"category_id"`
}

func toEventMessage(e *models.Event) eventMessage {
	return eventMessage{
		ID:                 e.ID,
		Title:              e.Title,
		DateStart:          e.DateStart,
		ParticipantsNumber: e.ParticipantsNumber,
		CategoryID:         e.CategoryID,
	}
}

func (s *eventService) Browse(ctx context.Context) (*BrowseResult, error) {
	events, err := s.ListEvents(ctx, EventQuery{})
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	features, err := s.features.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	return &BrowseResult{Events: events, Categories: categories, Features: features}, nil
}

func (s *eventService) Detail(ctx context.Context, id uint) (*models.EventOverview, error) {
	ov, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.Find(ctx, repository.ReviewFilter{EventID: &id})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	ov.Reviews = reviews
	return ov, nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*models.EventOverview, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrEventNotFound)
	}
	count, err := s.enrolls.CountByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count enrolls: %w", err)
	}
	avg, err := s.reviews.AverageRate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("average rate: %w", err)
	}
	return &models.EventOverview{Event: *event, EnrollCount: count, Rate: roundRate(avg)}, nil
}

func (s *eventService) ListEvents(ctx context.Context, q EventQuery) ([]models.EventOverview, error) {
	events, err := s.events.FindAll(ctx, q.EventFilter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	ids := make([]uint, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	counts, err := s.enrolls.CountByEvents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count enrolls: %w", err)
	}
	rates, err := s.reviews.AverageRates(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("average rates: %w", err)
	}

	out := make([]models.EventOverview, len(events))
	for i, e := range events {
		ov := models.EventOverview{Event: e, EnrollCount: counts[e.ID]}
		if avg, ok := rates[e.ID]; ok {
			ov.Rate = roundRate(&avg)
		}
		out[i] = ov
	}

	if q.Occupancy != nil {
		out = occupancy.Filter(out, *q.Occupancy,
			func(ov models.EventOverview) int { return ov.Event.ParticipantsNumber },
			func(ov models.EventOverview) int { return int(ov.EnrollCount) },
		)
	}
	return out, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event, featureIDs []uint) error {
	features, err := s.resolveRelations(ctx, event, featureIDs)
	if err != nil {
		return err
	}
	if err := s.events.Create(ctx, event, features); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	publish(ctx, s.publisher, s.logger, rabbitmq.KeyEventCreated, toEventMessage(event))
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id uint, changes *models.Event, featureIDs []uint) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrEventNotFound)
	}

	event.Title = changes.Title
	event.Description = changes.Description
	event.DateStart = changes.DateStart
	event.ParticipantsNumber = changes.ParticipantsNumber
	event.IsPrivate = changes.IsPrivate
	event.Logo = changes.Logo
	event.CategoryID = changes.CategoryID
	event.Category = nil

	features, err := s.resolveRelations(ctx, event, featureIDs)
	if err != nil {
		return nil, err
	}
	if err := s.events.Update(ctx, event, features); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	publish(ctx, s.publisher, s.logger, rabbitmq.KeyEventUpdated, toEventMessage(event))
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return notFound(err, ErrEventNotFound)
	}
	publish(ctx, s.publisher, s.logger, rabbitmq.KeyEventDeleted, map[string]uint{"id": id})
	return nil
}

// resolveRelations checks capacity bounds, that the category exists and
// loads the requested features.
func (s *eventService) resolveRelations(ctx context.Context, event *models.Event, featureIDs []uint) ([]models.Feature, error) {
	if event.ParticipantsNumber < 0 || event.ParticipantsNumber > models.MaxParticipants {
		return nil, ErrInvalidCapacity
	}
	if event.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *event.CategoryID); err != nil {
			return nil, notFound(err, ErrCategoryNotFound)
		}
	}

	ids := uniqueIDs(featureIDs)
	features, err := s.features.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load features: %w", err)
	}
	if len(features) != len(ids) {
		return nil, ErrFeatureNotFound
	}
	return features, nil
}

func roundRate(avg *float64) *float64 {
	if avg == nil {
		return nil
	}
	r := math.Round(*avg*10) / 10
	return &r
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// notFound maps gorm.ErrRecordNotFound to the given sentinel and wraps any
// other error.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("load record: %w", err)
}
