package legend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

// Create stores a new legend, uploading its image first when one is attached.
// A failed upload aborts before anything is written. If the insert fails after
// a successful upload, the fresh asset is discarded.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Legend, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l := input.toLegend()

	if input.Image != nil {
		url, publicID, err := s.assets.Upload(ctx, input.Image)
		if err != nil {
			return nil, fmt.Errorf("legend.Create upload image: %w", err)
		}
		l.SetImage(url, publicID)
	}

	created, err := s.legends.Create(ctx, l)
	if err != nil {
		if l.HasAsset() {
			s.discardAsset(ctx, *l.CloudinaryPublicID, "legend insert failed")
		}
		return nil, fmt.Errorf("legend.Create: %w", err)
	}

	s.log.InfoContext(ctx, "legend created",
		slog.Int64("legend_id", created.ID),
		slog.Bool("has_image", created.HasAsset()))

	return created, nil
}
