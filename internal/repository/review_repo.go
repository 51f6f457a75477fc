package repository

import (
	"context"

	"github.com/Eursukkul/events-portal/internal/models"
	"gorm.io/gorm"
)

type ReviewFilter struct {
	EventID *uint
	UserID  *uint
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	Find(ctx context.Context, filter ReviewFilter) ([]models.Review, error)
	ExistsForUserAndEvent(ctx context.Context, userID, eventID uint) (bool, error)
	AverageRate(ctx context.Context, eventID uint) (*float64, error)
	AverageRates(ctx context.Context, eventIDs []uint) (map[uint]float64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create fails with gorm.ErrDuplicatedKey when the user already reviewed
// the event.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Omit("User", "Event").Create(review).Error
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	res := r.db.WithContext(ctx).
		Model(review).
		Select("rate", "text", "updated_at").
		Updates(models.Review{Rate: review.Rate, Text: review.Text})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).Preload("User").First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Find(ctx context.Context, filter ReviewFilter) ([]models.Review, error) {
	q := r.db.WithContext(ctx).Preload("User")
	if filter.EventID != nil {
		q = q.Where("event_id = ?", *filter.EventID)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}

	var reviews []models.Review
	if err := q.Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ExistsForUserAndEvent(ctx context.Context, userID, eventID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	return count > 0, err
}

// AverageRate is nil when the event has no reviews.
func (r *reviewRepository) AverageRate(ctx context.Context, eventID uint) (*float64, error) {
	rates, err := r.AverageRates(ctx, []uint{eventID})
	if err != nil {
		return nil, err
	}
	avg, ok := rates[eventID]
	if !ok {
		return nil, nil
	}
	return &avg, nil
}

func (r *reviewRepository) AverageRates(ctx context.Context, eventIDs []uint) (map[uint]float64, error) {
	rates := make(map[uint]float64, len(eventIDs))
	if len(eventIDs) == 0 {
		return rates, nil
	}

	var rows []struct {
		EventID uint
		Avg     float64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("event_id, AVG(rate) AS avg").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		rates[row.EventID] = row.Avg
	}
	return rates, nil
}
