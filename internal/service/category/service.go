// Package category serves legend categories.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

// categoryRepo defines the category repository interface needed by the service.
type categoryRepo interface {
	ListAll(ctx context.Context) ([]domain.Category, error)
}

// Service implements category listing.
type Service struct {
	log  *slog.Logger
	repo categoryRepo
}

// NewService creates a new category service instance.
func NewService(logger *slog.Logger, repo categoryRepo) *Service {
	return &Service{
		log:  logger.With("service", "category"),
		repo: repo,
	}
}

// ListCategories returns every category.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("category.ListCategories: %w", err)
	}
	return categories, nil
}
