package repository

import (
	"context"

	"github.com/Eursukkul/events-portal/internal/models"
	"gorm.io/gorm"
)

type EnrollFilter struct {
	EventID *uint
	UserID  *uint
}

type EnrollRepository interface {
	Create(ctx context.Context, enroll *models.Enroll) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Enroll, error)
	Find(ctx context.Context, filter EnrollFilter) ([]models.Enroll, error)
	CountByEvent(ctx context.Context, eventID uint) (int64, error)
	CountByEvents(ctx context.Context, eventIDs []uint) (map[uint]int64, error)
}

type enrollRepository struct {
	db *gorm.DB
}

func NewEnrollRepository(db *gorm.DB) EnrollRepository {
	return &enrollRepository{db: db}
}

func (r *enrollRepository) Create(ctx context.Context, enroll *models.Enroll) error {
	return r.db.WithContext(ctx).Omit("User", "Event").Create(enroll).Error
}

func (r *enrollRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Enroll{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *enrollRepository) FindByID(ctx context.Context, id uint) (*models.Enroll, error) {
	var enroll models.Enroll
	if err := r.db.WithContext(ctx).Preload("User").Preload("Event").First(&enroll, id).Error; err != nil {
		return nil, err
	}
	return &enroll, nil
}

func (r *enrollRepository) Find(ctx context.Context, filter EnrollFilter) ([]models.Enroll, error) {
	q := r.db.WithContext(ctx).Preload("User").Preload("Event")
	if filter.EventID != nil {
		q = q.Where("event_id = ?", *filter.EventID)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}

	var enrolls []models.Enroll
	if err := q.Order("id ASC").Find(&enrolls).Error; err != nil {
		return nil, err
	}
	return enrolls, nil
}

func (r *enrollRepository) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Enroll{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

// CountByEvents returns enroll counts keyed by event id using a single
// grouped query. Events without enrolls are absent from the map.
func (r *enrollRepository) CountByEvents(ctx context.Context, eventIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		EventID uint
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Enroll{}).
		Select("event_id, COUNT(*) AS count").
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.EventID] = row.Count
	}
	return counts, nil
}
