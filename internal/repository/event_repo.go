package repository

import (
	"context"
	"strings"

	"github.com/Eursukkul/events-portal/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventFilter struct {
	Query      string
	CategoryID *uint
	IsPrivate  *bool
}

type EventRepository interface {
	Create(ctx context.Context, event *models.Event, features []models.Feature) error
	Update(ctx context.Context, event *models.Event, features []models.Feature) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindAll(ctx context.Context, filter EventFilter) ([]models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event, features []models.Feature) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(event).Error; err != nil {
			return err
		}
		if len(features) == 0 {
			return nil
		}
		if err := tx.Model(event).Association("Features").Replace(features); err != nil {
			return err
		}
		event.Features = features
		return nil
	})
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event, features []models.Feature) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(event).Error; err != nil {
			return err
		}
		assoc := tx.Model(event).Association("Features")
		if len(features) == 0 {
			if err := assoc.Clear(); err != nil {
				return err
			}
		} else if err := assoc.Replace(features); err != nil {
			return err
		}
		event.Features = features
		return nil
	})
}

// Delete removes the event together with its enrolls, reviews and feature
// links.
func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, id).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.Enroll{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&event).Association("Features").Clear(); err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Features", func(db *gorm.DB) *gorm.DB { return db.Order("features.id ASC") }).
		First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	q := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Features", func(db *gorm.DB) *gorm.DB { return db.Order("features.id ASC") })

	if s := strings.TrimSpace(filter.Query); s != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.IsPrivate != nil {
		q = q.Where("is_private = ?", *filter.IsPrivate)
	}

	var events []models.Event
	if err := q.Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
