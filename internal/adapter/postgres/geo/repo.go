// Package geo implements the read-only province/canton/district store using PostgreSQL.
package geo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/legends-backend/internal/adapter/postgres"
	"github.com/heartmarshall/legends-backend/internal/domain"
)

// Repo provides hierarchy lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new geo repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListProvinces returns every province ordered by id.
func (r *Repo) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	query, args, err := postgres.Builder().
		Select("id", "name").
		From("provinces").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build provinces query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}

	return collect(rows, "provinces", func(row pgx.Row, p *domain.Province) error {
		return row.Scan(&p.ID, &p.Name)
	})
}

// ListCantons returns all cantons, or only those of provinceID when it is set.
func (r *Repo) ListCantons(ctx context.Context, provinceID *int64) ([]domain.Canton, error) {
	b := postgres.Builder().
		Select("id", "name", "province_id").
		From("cantons").
		OrderBy("id")
	if provinceID != nil {
		b = b.Where("province_id = ?", *provinceID)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cantons query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cantons: %w", err)
	}

	return collect(rows, "cantons", func(row pgx.Row, c *domain.Canton) error {
		return row.Scan(&c.ID, &c.Name, &c.ProvinceID)
	})
}

// ListDistricts returns districts filtered by cantonID when set, otherwise by
// the province of their canton when provinceID is set, otherwise all of them.
func (r *Repo) ListDistricts(ctx context.Context, cantonID, provinceID *int64) ([]domain.District, error) {
	b := postgres.Builder().
		Select("d.id", "d.name", "d.canton_id").
		From("districts d").
		OrderBy("d.id")

	switch {
	case cantonID != nil:
		b = b.Where("d.canton_id = ?", *cantonID)
	case provinceID != nil:
		b = b.Join("cantons c ON c.id = d.canton_id").
			Where("c.province_id = ?", *provinceID)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build districts query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}

	return collect(rows, "districts", func(row pgx.Row, d *domain.District) error {
		return row.Scan(&d.ID, &d.Name, &d.CantonID)
	})
}

// collect scans every row with scan and closes rows. It never returns a nil slice.
func collect[T any](rows pgx.Rows, entity string, scan func(pgx.Row, *T) error) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		var item T
		if err := scan(rows, &item); err != nil {
			return nil, fmt.Errorf("scan %s: %w", entity, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", entity, err)
	}

	return result, nil
}
