// Package legend implements the legend write path and the projection reads.
package legend

import (
	"context"
	"io"
	"log/slog"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

// legendRepo defines the legend repository interface needed by the service.
type legendRepo interface {
	ListViews(ctx context.Context) ([]domain.LegendView, error)
	ListViewsFiltered(ctx context.Context, f domain.LegendFilter) ([]domain.LegendView, error)
	GetView(ctx context.Context, id int64) (*domain.LegendView, error)
	GetByID(ctx context.Context, id int64) (*domain.Legend, error)
	Create(ctx context.Context, l *domain.Legend) (*domain.Legend, error)
	Update(ctx context.Context, l *domain.Legend) (*domain.Legend, error)
	Delete(ctx context.Context, id int64) error
}

// assetStore defines the media host operations needed by the service.
type assetStore interface {
	Upload(ctx context.Context, r io.Reader) (url, publicID string, err error)
	Delete(ctx context.Context, publicID string) error
}

// Service implements legend operations.
type Service struct {
	log     *slog.Logger
	legends legendRepo
	assets  assetStore
}

// NewService creates a new legend service instance.
func NewService(logger *slog.Logger, legends legendRepo, assets assetStore) *Service {
	return &Service{
		log:     logger.With("service", "legend"),
		legends: legends,
		assets:  assets,
	}
}

// discardAsset deletes publicID on a best-effort basis; failures are only logged.
func (s *Service) discardAsset(ctx context.Context, publicID, reason string) {
	if err := s.assets.Delete(ctx, publicID); err != nil {
		s.log.WarnContext(ctx, "asset deletion failed",
			slog.String("public_id", publicID),
			slog.String("reason", reason),
			slog.String("error", err.Error()))
		return
	}
	s.log.InfoContext(ctx, "asset deleted",
		slog.String("public_id", publicID),
		slog.String("reason", reason))
}
