package service

import (
	"context"
	"fmt"

	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/Eursukkul/events-portal/internal/repository"
)

type FeatureService interface {
	ListFeatures(ctx context.Context) ([]models.Feature, error)
	CreateFeature(ctx context.Context, feature *models.Feature) error
	UpdateFeature(ctx context.Context, feature *models.Feature) error
	DeleteFeature(ctx context.Context, id uint) error
}

type featureService struct {
	repo repository.FeatureRepository
}

func NewFeatureService(repo repository.FeatureRepository) FeatureService {
	return &featureService{repo: repo}
}

func (s *featureService) ListFeatures(ctx context.Context) ([]models.Feature, error) {
	return s.repo.FindAll(ctx)
}

func (s *featureService) CreateFeature(ctx context.Context, feature *models.Feature) error {
	if err := s.repo.Create(ctx, feature); err != nil {
		return fmt.Errorf("create feature: %w", err)
	}
	return nil
}

func (s *featureService) UpdateFeature(ctx context.Context, feature *models.Feature) error {
	if err := s.repo.Update(ctx, feature); err != nil {
		return notFound(err, ErrFeatureNotFound)
	}
	return nil
}

func (s *featureService) DeleteFeature(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, ErrFeatureNotFound)
	}
	return nil
}
