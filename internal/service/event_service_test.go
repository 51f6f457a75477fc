package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/Eursukkul/events-portal/internal/occupancy"
	"github.com/Eursukkul/events-portal/internal/repository"
	"github.com/Eursukkul/events-portal/pkg/rabbitmq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sampleEvents() []models.Event {
	start := time.Date(2026, 11, 20, 19, 0, 0, 0, time.UTC)
	return []models.Event{
		{ID: 1, Title: "Half empty", ParticipantsNumber: 10, DateStart: start},
		{ID: 2, Title: "Filling up", ParticipantsNumber: 5, DateStart: start},
		{ID: 3, Title: "Sold out", ParticipantsNumber: 10, DateStart: start},
		{ID: 4, Title: "Overbooked", ParticipantsNumber: 4, DateStart: start},
	}
}

func newTestEventService(pub Publisher) (EventService, *mockEventRepo) {
	events := &mockEventRepo{
		findAllFn: func(ctx context.Context, f repository.EventFilter) ([]models.Event, error) {
			return sampleEvents(), nil
		},
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			for _, e := range sampleEvents() {
				if e.ID == id {
					return &e, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewEventService(EventDeps{
		Events:     events,
		Categories: &mockCategoryRepo{categories: map[uint]models.Category{1: {ID: 1, Title: "Music"}}},
		Features:   &mockFeatureRepo{features: map[uint]models.Feature{1: {ID: 1, Title: "Parking"}, 2: {ID: 2, Title: "Food"}}},
		Enrolls:    &mockEnrollRepo{counts: map[uint]int64{1: 5, 2: 3, 3: 10, 4: 6}},
		Reviews: &mockReviewRepo{
			rates:   map[uint]float64{1: 4.25, 3: 11.0 / 3.0},
			reviews: []models.Review{{ID: 1, EventID: 1, Rate: 4, Text: "nice"}},
		},
		Publisher: pub,
		Logger:    discard,
	})
	return svc, events
}

func TestListEvents_Aggregates(t *testing.T) {
	svc, _ := newTestEventService(nil)

	events, err := svc.ListEvents(context.Background(), EventQuery{})

	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, int64(5), events[0].EnrollCount)
	require.NotNil(t, events[0].Rate)
	assert.Equal(t, 4.3, *events[0].Rate)
	assert.Nil(t, events[1].Rate)
	require.NotNil(t, events[2].Rate)
	assert.Equal(t, 3.7, *events[2].Rate)
}

func TestListEvents_OccupancyFilter(t *testing.T) {
	svc, _ := newTestEventService(nil)
	ctx := context.Background()

	titles := func(b occupancy.Bucket) []string {
		events, err := svc.ListEvents(ctx, EventQuery{Occupancy: &b})
		require.NoError(t, err)
		var out []string
		for _, e := range events {
			out = append(out, e.Event.Title)
		}
		return out
	}

	assert.Equal(t, []string{"Half empty"}, titles(occupancy.LTEHalf))
	assert.Equal(t, []string{"Filling up", "Overbooked"}, titles(occupancy.GTHalf))
	assert.Equal(t, []string{"Sold out"}, titles(occupancy.SoldOut))
}

func TestDetail_IncludesReviews(t *testing.T) {
	svc, _ := newTestEventService(nil)

	ov, err := svc.Detail(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Half empty", ov.Event.Title)
	assert.Equal(t, int64(5), ov.EnrollCount)
	assert.Len(t, ov.Reviews, 1)
}

func TestDetail_NotFound(t *testing.T) {
	svc, _ := newTestEventService(nil)

	_, err := svc.Detail(context.Background(), 99)

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestGetEvent_RepoError(t *testing.T) {
	svc, repo := newTestEventService(nil)
	repo.findByIDFn = func(ctx context.Context, id uint) (*models.Event, error) {
		return nil, errors.New("db connection failed")
	}

	_, err := svc.GetEvent(context.Background(), 1)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEventNotFound)
	assert.Contains(t, err.Error(), "db connection failed")
}

func TestBrowse(t *testing.T) {
	svc, _ := newTestEventService(nil)

	res, err := svc.Browse(context.Background())

	require.NoError(t, err)
	assert.Len(t, res.Events, 4)
	assert.Len(t, res.Categories, 1)
}

func TestCreateEvent_Success(t *testing.T) {
	pub := &mockPublisher{}
	svc, repo := newTestEventService(pub)
	var gotFeatures []models.Feature
	repo.createFn = func(ctx context.Context, event *models.Event, features []models.Feature) error {
		event.ID = 7
		gotFeatures = features
		return nil
	}

	category := uint(1)
	event := &models.Event{Title: "Golang Meetup", ParticipantsNumber: 50, CategoryID: &category}
	err := svc.CreateEvent(context.Background(), event, []uint{2, 1, 2})

	require.NoError(t, err)
	assert.Equal(t, uint(7), event.ID)
	assert.Len(t, gotFeatures, 2)
	assert.Equal(t, []string{rabbitmq.KeyEventCreated}, pub.keys())
}

func TestCreateEvent_PublishFailureIsIgnored(t *testing.T) {
	pub := &mockPublisher{err: errors.New("broker down")}
	svc, repo := newTestEventService(pub)
	repo.createFn = func(ctx context.Context, event *models.Event, features []models.Feature) error { return nil }

	err := svc.CreateEvent(context.Background(), &models.Event{Title: "x", ParticipantsNumber: 1}, nil)

	assert.NoError(t, err)
}

func TestCreateEvent_Validation(t *testing.T) {
	svc, repo := newTestEventService(nil)
	repo.createFn = func(ctx context.Context, event *models.Event, features []models.Feature) error {
		t.Fatal("repository must not be called")
		return nil
	}
	ctx := context.Background()

	missing := uint(9)
	err := svc.CreateEvent(ctx, &models.Event{Title: "x", CategoryID: &missing}, nil)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	err = svc.CreateEvent(ctx, &models.Event{Title: "x"}, []uint{1, 42})
	assert.ErrorIs(t, err, ErrFeatureNotFound)

	err = svc.CreateEvent(ctx, &models.Event{Title: "x", ParticipantsNumber: 10001}, nil)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestUpdateEvent(t *testing.T) {
	pub := &mockPublisher{}
	svc, repo := newTestEventService(pub)
	var saved *models.Event
	repo.updateFn = func(ctx context.Context, event *models.Event, features []models.Feature) error {
		saved = event
		return nil
	}

	updated, err := svc.UpdateEvent(context.Background(), 1, &models.Event{Title: "Renamed", ParticipantsNumber: 20, IsPrivate: true}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, uint(1), saved.ID)
	assert.True(t, saved.IsPrivate)
	assert.Equal(t, []string{rabbitmq.KeyEventUpdated}, pub.keys())

	_, err = svc.UpdateEvent(context.Background(), 99, &models.Event{Title: "x"}, nil)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDeleteEvent(t *testing.T) {
	pub := &mockPublisher{}
	svc, repo := newTestEventService(pub)
	repo.deleteFn = func(ctx context.Context, id uint) error {
		if id == 1 {
			return nil
		}
		return gorm.ErrRecordNotFound
	}

	assert.NoError(t, svc.DeleteEvent(context.Background(), 1))
	assert.ErrorIs(t, svc.DeleteEvent(context.Background(), 2), ErrEventNotFound)
	assert.Equal(t, []string{rabbitmq.KeyEventDeleted}, pub.keys())
}
