package handler

import (
	"context"
	"io"
	"log/slog"

	"github.com/Eursukkul/events-portal/internal/auth"
	"github.com/Eursukkul/events-portal/internal/middleware"
	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/Eursukkul/events-portal/internal/repository"
	"github.com/Eursukkul/events-portal/internal/service"
	"github.com/labstack/echo/v4"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = middleware.NewRequestValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(discard)
	return e
}

// --- Mock EventService ---

type mockEventService struct {
	browseFn func(ctx context.Context) (*service.BrowseResult, error)
	detailFn func(ctx context.Context, id uint) (*models.EventOverview, error)
	listFn   func(ctx context.Context, q service.EventQuery) ([]models.EventOverview, error)
	getFn    func(ctx context.Context, id uint) (*models.EventOverview, error)
	createFn func(ctx context.Context, event *models.Event, featureIDs []uint) error
	updateFn func(ctx context.Context, id uint, changes *models.Event, featureIDs []uint) (*models.Event, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockEventService) Browse(ctx context.Context) (*service.BrowseResult, error) {
	return m.browseFn(ctx)
}
func (m *mockEventService) Detail(ctx context.Context, id uint) (*models.EventOverview, error) {
	return m.detailFn(ctx, id)
}
func (m *mockEventService) ListEvents(ctx context.Context, q service.EventQuery) ([]models.EventOverview, error) {
	return m.listFn(ctx, q)
}
func (m *mockEventService) GetEvent(ctx context.Context, id uint) (*models.EventOverview, error) {
	return m.getFn(ctx, id)
}
func (m *mockEventService) CreateEvent(ctx context.Context, event *models.Event, featureIDs []uint) error {
	return m.createFn(ctx, event, featureIDs)
}
func (m *mockEventService) UpdateEvent(ctx context.Context, id uint, changes *models.Event, featureIDs []uint) (*models.Event, error) {
	return m.updateFn(ctx, id, changes, featureIDs)
}
func (m *mockEventService) DeleteEvent(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock ReviewService ---

type mockReviewService struct {
	submitFn func(ctx context.Context, identity *auth.Identity, in service.ReviewInput) (*models.Review, error)
	listFn   func(ctx context.Context, filter repository.ReviewFilter) ([]models.Review, error)
	updateFn func(ctx context.Context, id uint, rate int, text string) (*models.Review, error)
}

func (m *mockReviewService) SubmitReview(ctx context.Context, identity *auth.Identity, in service.ReviewInput) (*models.Review, error) {
	return m.submitFn(ctx, identity, in)
}
func (m *mockReviewService) ListReviews(ctx context.Context, filter repository.ReviewFilter) ([]models.Review, error) {
	return m.listFn(ctx, filter)
}
func (m *mockReviewService) UpdateReview(ctx context.Context, id uint, rate int, text string) (*models.Review, error) {
	return m.updateFn(ctx, id, rate, text)
}
func (m *mockReviewService) DeleteReview(ctx context.Context, id uint) error {
	return service.ErrReviewNotFound
}

// --- Mock CategoryService ---

type mockCategoryService struct {
	listFn   func(ctx context.Context) ([]models.CategoryOverview, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]models.CategoryOverview, error) {
	return m.listFn(ctx)
}
func (m *mockCategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	return nil, service.ErrCategoryNotFound
}
func (m *mockCategoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	category.ID = 1
	return nil
}
func (m *mockCategoryService) UpdateCategory(ctx context.Context, category *models.Category) error {
	return nil
}
func (m *mockCategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock FeatureService ---

type mockFeatureService struct{}

func (m *mockFeatureService) ListFeatures(ctx context.Context) ([]models.Feature, error) {
	return nil, nil
}
func (m *mockFeatureService) CreateFeature(ctx context.Context, feature *models.Feature) error {
	feature.ID = 1
	return nil
}
func (m *mockFeatureService) UpdateFeature(ctx context.Context, feature *models.Feature) error {
	return service.ErrFeatureNotFound
}
func (m *mockFeatureService) DeleteFeature(ctx context.Context, id uint) error { return nil }

// --- Mock EnrollService ---

type mockEnrollService struct {
	createFn func(ctx context.Context, userID, eventID uint) (*models.Enroll, error)
}

func (m *mockEnrollService) ListEnrolls(ctx context.Context, filter repository.EnrollFilter) ([]models.Enroll, error) {
	return nil, nil
}
func (m *mockEnrollService) CreateEnroll(ctx context.Context, userID, eventID uint) (*models.Enroll, error) {
	return m.createFn(ctx, userID, eventID)
}
func (m *mockEnrollService) DeleteEnroll(ctx context.Context, id uint) error {
	return service.ErrEnrollNotFound
}
