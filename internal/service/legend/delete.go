package legend

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes a legend. Its asset, if any, gets exactly one best-effort
// deletion request before the row goes away.
func (s *Service) Delete(ctx context.Context, id int64) error {
	l, err := s.legends.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("legend.Delete: %w", err)
	}

	if l.HasAsset() {
		s.discardAsset(ctx, *l.CloudinaryPublicID, "legend deleted")
	}

	if err := s.legends.Delete(ctx, id); err != nil {
		return fmt.Errorf("legend.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "legend deleted", slog.Int64("legend_id", id))
	return nil
}
