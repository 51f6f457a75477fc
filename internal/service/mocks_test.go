package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/Eursukkul/events-portal/internal/repository"
	"gorm.io/gorm"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// --- Mock EventRepository ---

type mockEventRepo struct {
	createFn   func(ctx context.Context, event *models.Event, features []models.Feature) error
	updateFn   func(ctx context.Context, event *models.Event, features []models.Feature) error
	deleteFn   func(ctx context.Context, id uint) error
	findByIDFn func(ctx context.Context, id uint) (*models.Event, error)
	findAllFn  func(ctx context.Context, filter repository.EventFilter) ([]models.Event, error)
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event, features []models.Feature) error {
	return m.createFn(ctx, event, features)
}
func (m *mockEventRepo) Update(ctx context.Context, event *models.Event, features []models.Feature) error {
	return m.updateFn(ctx, event, features)
}
func (m *mockEventRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockEventRepo) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventRepo) FindAll(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	return m.findAllFn(ctx, filter)
}

// --- Mock CategoryRepository ---

type mockCategoryRepo struct {
	categories map[uint]models.Category
	counts     map[uint]int64
	deleteFn   func(ctx context.Context, id uint) error
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *models.Category) error { return nil }
func (m *mockCategoryRepo) Update(ctx context.Context, c *models.Category) error {
	if _, ok := m.categories[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}
func (m *mockCategoryRepo) Delete(ctx context.Context, id uint) error { return m.deleteFn(ctx, id) }
func (m *mockCategoryRepo) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}
func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	for id := uint(1); id <= uint(len(m.categories)); id++ {
		out = append(out, m.categories[id])
	}
	return out, nil
}
func (m *mockCategoryRepo) CountEvents(ctx context.Context) (map[uint]int64, error) {
	return m.counts, nil
}

// --- Mock FeatureRepository ---

type mockFeatureRepo struct {
	features map[uint]models.Feature
}

func (m *mockFeatureRepo) Create(ctx context.Context, f *models.Feature) error { return nil }
func (m *mockFeatureRepo) Update(ctx context.Context, f *models.Feature) error { return nil }
func (m *mockFeatureRepo) Delete(ctx context.Context, id uint) error          { return nil }
func (m *mockFeatureRepo) FindAll(ctx context.Context) ([]models.Feature, error) {
	return nil, nil
}
func (m *mockFeatureRepo) FindByIDs(ctx context.Context, ids []uint) ([]models.Feature, error) {
	var out []models.Feature
	for _, id := range ids {
		if f, ok := m.features[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

// --- Mock EnrollRepository ---

type mockEnrollRepo struct {
	counts   map[uint]int64
	createFn func(ctx context.Context, e *models.Enroll) error
}

func (m *mockEnrollRepo) Create(ctx context.Context, e *models.Enroll) error { return m.createFn(ctx, e) }
func (m *mockEnrollRepo) Delete(ctx context.Context, id uint) error       { return gorm.ErrRecordNotFound }
func (m *mockEnrollRepo) FindByID(ctx context.Context, id uint) (*models.Enroll, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockEnrollRepo) Find(ctx context.Context, f repository.EnrollFilter) ([]models.Enroll, error) {
	return nil, nil
}
func (m *mockEnrollRepo) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	return m.counts[eventID], nil
}
func (m *mockEnrollRepo) CountByEvents(ctx context.Context, ids []uint) (map[uint]int64, error) {
	return m.counts, nil
}

// --- Mock ReviewRepository ---

type mockReviewRepo struct {
	rates    map[uint]float64
	reviews  []models.Review
	existsFn func(ctx context.Context, userID, eventID uint) (bool, error)
	createFn func(ctx context.Context, r *models.Review) error
}

func (m *mockReviewRepo) Create(ctx context.Context, r *models.Review) error { return m.createFn(ctx, r) }
func (m *mockReviewRepo) Update(ctx context.Context, r *models.Review) error { return nil }
func (m *mockReviewRepo) Delete(ctx context.Context, id uint) error          { return gorm.ErrRecordNotFound }
func (m *mockReviewRepo) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	for _, r := range m.reviews {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockReviewRepo) Find(ctx context.Context, f repository.ReviewFilter) ([]models.Review, error) {
	return m.reviews, nil
}
func (m *mockReviewRepo) ExistsForUserAndEvent(ctx context.Context, userID, eventID uint) (bool, error) {
	return m.existsFn(ctx, userID, eventID)
}
func (m *mockReviewRepo) AverageRate(ctx context.Context, eventID uint) (*float64, error) {
	if avg, ok := m.rates[eventID]; ok {
		return &avg, nil
	}
	return nil, nil
}
func (m *mockReviewRepo) AverageRates(ctx context.Context, ids []uint) (map[uint]float64, error) {
	return m.rates, nil
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	users map[uint]models.User
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}
func (m *mockUserRepo) Upsert(ctx context.Context, u *models.User) error { return nil }
func (m *mockUserRepo) Delete(ctx context.Context, id uint) error        { return nil }

// --- Mock Publisher ---

type published struct {
	key     string
	payload any
}

type mockPublisher struct {
	mu   sync.Mutex
	msgs []published
	err  error
}

func (m *mockPublisher) Publish(ctx context.Context, key string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, published{key: key, payload: payload})
	return m.err
}

func (m *mockPublisher) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.msgs))
	for i, p := range m.msgs {
		out[i] = p.key
	}
	return out
}
