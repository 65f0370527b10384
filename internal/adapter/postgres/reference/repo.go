// Package reference loads the fixed reference data (geography and categories)
// with explicit ids, so that re-running a load converges instead of duplicating.
package reference

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/legends-backend/internal/adapter/postgres"
	"github.com/heartmarshall/legends-backend/internal/domain"
)

// Repo upserts reference rows backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reference repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// UpsertProvinces inserts provinces or renames existing ones. Returns rows affected.
func (r *Repo) UpsertProvinces(ctx context.Context, provinces []domain.Province) (int, error) {
	b := postgres.Builder().Insert("provinces").Columns("id", "name")
	for _, p := range provinces {
		b = b.Values(p.ID, p.Name)
	}
	return r.exec(ctx, "provinces", len(provinces),
		b.Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name"))
}

// UpsertCantons inserts cantons or updates name and parent of existing ones.
func (r *Repo) UpsertCantons(ctx context.Context, cantons []domain.Canton) (int, error) {
	b := postgres.Builder().Insert("cantons").Columns("id", "name", "province_id")
	for _, c := range cantons {
		b = b.Values(c.ID, c.Name, c.ProvinceID)
	}
	return r.exec(ctx, "cantons", len(cantons),
		b.Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, province_id = EXCLUDED.province_id"))
}

// UpsertDistricts inserts districts or updates name and parent of existing ones.
func (r *Repo) UpsertDistricts(ctx context.Context, districts []domain.District) (int, error) {
	b := postgres.Builder().Insert("districts").Columns("id", "name", "canton_id")
	for _, d := range districts {
		b = b.Values(d.ID, d.Name, d.CantonID)
	}
	return r.exec(ctx, "districts", len(districts),
		b.Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, canton_id = EXCLUDED.canton_id"))
}

// UpsertCategories inserts categories or renames existing ones.
func (r *Repo) UpsertCategories(ctx context.Context, categories []domain.Category) (int, error) {
	b := postgres.Builder().Insert("categories").Columns("id", "name")
	for _, c := range categories {
		b = b.Values(c.ID, c.Name)
	}
	return r.exec(ctx, "categories", len(categories),
		b.Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name"))
}

// sequencedTables are the reference tables whose serial sequences must move
// past explicitly inserted ids.
var sequencedTables = []string{"provinces", "cantons", "districts", "categories"}

// ResetSequences advances each reference table's id sequence past its highest
// id. Sequences never move backwards.
func (r *Repo) ResetSequences(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	for _, table := range sequencedTables {
		sql := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'),
				GREATEST((SELECT COALESCE(MAX(id), 1) FROM %[1]s), nextval(pg_get_serial_sequence('%[1]s', 'id'))))`,
			table)
		if _, err := q.Exec(ctx, sql); err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}
	return nil
}

func (r *Repo) exec(ctx context.Context, table string, n int, b sq.InsertBuilder) (int, error) {
	if n == 0 {
		return 0, nil
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s upsert: %w", table, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("upsert %s: %w", table, postgres.MapError(err, table, 0))
	}
	return int(tag.RowsAffected()), nil
}
