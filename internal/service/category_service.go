package service

import (
	"context"
	"fmt"

	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/Eursukkul/events-portal/internal/repository"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.CategoryOverview, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.CategoryOverview, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	counts, err := s.repo.CountEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	out := make([]models.CategoryOverview, len(categories))
	for i, c := range categories {
		out[i] = models.CategoryOverview{Category: c, EventCount: counts[c.ID]}
	}
	return out, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}
	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, category *models.Category) error {
	if err := s.repo.Create(ctx, category); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, category *models.Category) error {
	if err := s.repo.Update(ctx, category); err != nil {
		return notFound(err, ErrCategoryNotFound)
	}
	return nil
}

// DeleteCategory keeps the category's events; they become uncategorized.
func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, ErrCategoryNotFound)
	}
	return nil
}
