package legend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

// Update overwrites a legend's fields.
//
// With a new image the prior asset is deleted best-effort, then the new image
// is uploaded; an upload failure aborts the update with no field changes.
// Without a new image, a non-nil ImageURL replaces the stored URL verbatim, or
// clears both image fields when empty, deleting the hosted asset best-effort
// since its handle is dropped.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Legend, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.legends.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("legend.Update: %w", err)
	}

	switch {
	case input.Image != nil:
		if l.HasAsset() {
			s.discardAsset(ctx, *l.CloudinaryPublicID, "legend image replaced")
		}
		url, publicID, err := s.assets.Upload(ctx, input.Image)
		if err != nil {
			return nil, fmt.Errorf("legend.Update upload image: %w", err)
		}
		l.SetImage(url, publicID)

	case input.ImageURL != nil && *input.ImageURL == "":
		if l.HasAsset() {
			s.discardAsset(ctx, *l.CloudinaryPublicID, "legend image cleared")
		}
		l.ClearImage()

	case input.ImageURL != nil:
		url := *input.ImageURL
		l.ImageURL = &url
	}

	input.apply(l)

	updated, err := s.legends.Update(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("legend.Update: %w", err)
	}

	s.log.InfoContext(ctx, "legend updated",
		slog.Int64("legend_id", updated.ID),
		slog.Bool("new_image", input.Image != nil))

	return updated, nil
}
