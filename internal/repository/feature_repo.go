package repository

import (
	"context"

	"github.com/Eursukkul/events-portal/internal/models"
	"gorm.io/gorm"
)

type FeatureRepository interface {
	Create(ctx context.Context, feature *models.Feature) error
	Update(ctx context.Context, feature *models.Feature) error
	Delete(ctx context.Context, id uint) error
	FindAll(ctx context.Context) ([]models.Feature, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Feature, error)
}

type featureRepository struct {
	db *gorm.DB
}

func NewFeatureRepository(db *gorm.DB) FeatureRepository {
	return &featureRepository{db: db}
}

func (r *featureRepository) Create(ctx context.Context, feature *models.Feature) error {
	return r.db.WithContext(ctx).Create(feature).Error
}

func (r *featureRepository) Update(ctx context.Context, feature *models.Feature) error {
	res := r.db.WithContext(ctx).Model(feature).Update("title", feature.Title)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete unlinks the feature from every event before removing it.
func (r *featureRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM event_features WHERE feature_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Feature{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *featureRepository) FindAll(ctx context.Context) ([]models.Feature, error) {
	var features []models.Feature
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

func (r *featureRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Feature, error) {
	var features []models.Feature
	if len(ids) == 0 {
		return features, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}
