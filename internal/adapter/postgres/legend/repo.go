// Package legend implements the legend store and its denormalized read
// projection using PostgreSQL.
package legend

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/legends-backend/internal/adapter/postgres"
	"github.com/heartmarshall/legends-backend/internal/domain"
)

const (
	getLegendSQL = `SELECT ` + legendColumns + ` FROM legends WHERE id = $1`

	createLegendSQL = `
INSERT INTO legends (name, description, category_id, legend_date, image_url, cloudinary_public_id, district_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + legendColumns

	updateLegendSQL = `
UPDATE legends
   SET name = $2,
       description = $3,
       category_id = $4,
       legend_date = $5,
       image_url = $6,
       cloudinary_public_id = $7,
       district_id = $8
 WHERE id = $1
RETURNING ` + legendColumns

	deleteLegendSQL = `DELETE FROM legends WHERE id = $1`
)

// Repo provides legend persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new legend repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read projection
// ---------------------------------------------------------------------------

// ListViews returns the projection of every legend ordered by id.
func (r *Repo) ListViews(ctx context.Context) ([]domain.LegendView, error) {
	return r.queryViews(ctx, baseViewQuery())
}

// ListViewsFiltered returns the projections matching every set predicate of f.
func (r *Repo) ListViewsFiltered(ctx context.Context, f domain.LegendFilter) ([]domain.LegendView, error) {
	return r.queryViews(ctx, applyFilter(baseViewQuery(), f))
}

// GetView returns the projection of one legend.
func (r *Repo) GetView(ctx context.Context, id int64) (*domain.LegendView, error) {
	query, args, err := baseViewQuery().Where(sq.Eq{"l.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build legend view query: %w", err)
	}

	v, err := scanView(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "legend", id)
	}
	return &v, nil
}

func (r *Repo) queryViews(ctx context.Context, b sq.SelectBuilder) ([]domain.LegendView, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build legend view query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list legends: %w", err)
	}
	defer rows.Close()

	views := make([]domain.LegendView, 0)
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan legend view: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate legends: %w", err)
	}

	return views, nil
}

// ---------------------------------------------------------------------------
// Write path
// ---------------------------------------------------------------------------

// GetByID returns the stored legend row.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Legend, error) {
	l, err := scanLegend(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getLegendSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "legend", id)
	}
	return &l, nil
}

// Create inserts l and returns the stored row with its assigned id.
func (r *Repo) Create(ctx context.Context, l *domain.Legend) (*domain.Legend, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createLegendSQL,
		l.Name, l.Description, l.CategoryID, domain.TruncateToDate(l.LegendDate),
		l.ImageURL, l.CloudinaryPublicID, l.DistrictID,
	)

	created, err := scanLegend(row)
	if err != nil {
		return nil, mapWriteError(err, 0)
	}
	return &created, nil
}

// Update overwrites every mutable column of the legend identified by l.ID.
func (r *Repo) Update(ctx context.Context, l *domain.Legend) (*domain.Legend, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateLegendSQL,
		l.ID, l.Name, l.Description, l.CategoryID, domain.TruncateToDate(l.LegendDate),
		l.ImageURL, l.CloudinaryPublicID, l.DistrictID,
	)

	updated, err := scanLegend(row)
	if err != nil {
		return nil, mapWriteError(err, l.ID)
	}
	return &updated, nil
}

// Delete removes the legend row.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteLegendSQL, id)
	if err != nil {
		return postgres.MapError(err, "legend", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("legend %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// mapWriteError turns a foreign key violation into a validation error on the
// referencing column, so an unknown category or district reads as bad input.
func mapWriteError(err error, id int64) error {
	code, constraint := postgres.PgErrorCode(err)
	if code != postgres.CodeForeignKeyViolation {
		return postgres.MapError(err, "legend", id)
	}

	field := "reference"
	switch {
	case strings.Contains(constraint, "category_id"):
		field = "category_id"
	case strings.Contains(constraint, "district_id"):
		field = "district_id"
	}
	return fmt.Errorf("legend %d: %w", id, domain.NewValidationError(field, "references a missing row"))
}
