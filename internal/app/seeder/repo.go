// Package seeder loads the reference geography and category list into the
// database in a single transaction.
package seeder

import (
	"context"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

// ReferenceRepo defines the upsert contract consumed by the seeder.
// Implemented by reference.Repo.
type ReferenceRepo interface {
	UpsertProvinces(ctx context.Context, provinces []domain.Province) (int, error)
	UpsertCantons(ctx context.Context, cantons []domain.Canton) (int, error)
	UpsertDistricts(ctx context.Context, districts []domain.District) (int, error)
	UpsertCategories(ctx context.Context, categories []domain.Category) (int, error)

	// ResetSequences moves serial sequences past the explicitly inserted ids.
	ResetSequences(ctx context.Context) error
}

// TxRunner runs fn inside one database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
