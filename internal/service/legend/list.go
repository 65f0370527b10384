package legend

import (
	"context"
	"fmt"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

// List returns the projection of every legend.
func (s *Service) List(ctx context.Context) ([]domain.LegendView, error) {
	views, err := s.legends.ListViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("legend.List: %w", err)
	}
	return views, nil
}

// Filter returns the projections matching every predicate set in f.
// An empty filter behaves like List.
func (s *Service) Filter(ctx context.Context, f domain.LegendFilter) ([]domain.LegendView, error) {
	if f.IsEmpty() {
		return s.List(ctx)
	}

	views, err := s.legends.ListViewsFiltered(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("legend.Filter: %w", err)
	}
	return views, nil
}

// Get returns the projection of one legend, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*domain.LegendView, error) {
	view, err := s.legends.GetView(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("legend.Get: %w", err)
	}
	return view, nil
}
