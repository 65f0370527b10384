// Package geo serves the read-only province, canton and district hierarchy.
package geo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

// geoRepo defines the hierarchy lookups needed by the geo service.
type geoRepo interface {
	ListProvinces(ctx context.Context) ([]domain.Province, error)
	ListCantons(ctx context.Context, provinceID *int64) ([]domain.Canton, error)
	ListDistricts(ctx context.Context, cantonID, provinceID *int64) ([]domain.District, error)
}

// Service implements hierarchy listing.
type Service struct {
	log  *slog.Logger
	repo geoRepo
}

// NewService creates a new geo service instance.
func NewService(logger *slog.Logger, repo geoRepo) *Service {
	return &Service{
		log:  logger.With("service", "geo"),
		repo: repo,
	}
}

// ListProvinces returns every province.
func (s *Service) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	provinces, err := s.repo.ListProvinces(ctx)
	if err != nil {
		return nil, fmt.Errorf("geo.ListProvinces: %w", err)
	}
	return provinces, nil
}

// ListCantons returns every canton, or only those of provinceID when set.
func (s *Service) ListCantons(ctx context.Context, provinceID *int64) ([]domain.Canton, error) {
	cantons, err := s.repo.ListCantons(ctx, provinceID)
	if err != nil {
		return nil, fmt.Errorf("geo.ListCantons: %w", err)
	}
	return cantons, nil
}

// ListDistricts returns districts of cantonID when set, else of provinceID
// when set, else all of them.
func (s *Service) ListDistricts(ctx context.Context, cantonID, provinceID *int64) ([]domain.District, error) {
	if cantonID != nil && provinceID != nil {
		s.log.DebugContext(ctx, "canton filter takes precedence over province filter",
			slog.Int64("canton_id", *cantonID), slog.Int64("province_id", *provinceID))
	}

	districts, err := s.repo.ListDistricts(ctx, cantonID, provinceID)
	if err != nil {
		return nil, fmt.Errorf("geo.ListDistricts: %w", err)
	}
	return districts, nil
}
