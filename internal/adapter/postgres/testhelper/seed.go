package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Hierarchy is one freshly seeded province -> canton -> district chain.
type Hierarchy struct {
	Province domain.Province
	Canton   domain.Canton
	District domain.District
}

// SeedProvince inserts a province with a unique name.
func SeedProvince(t *testing.T, pool *pgxpool.Pool) domain.Province {
	t.Helper()

	p := domain.Province{Name: "Prov " + UniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO provinces (name) VALUES ($1) RETURNING id`, p.Name,
	).Scan(&p.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedProvince: %v", err)
	}
	return p
}

// SeedCanton inserts a canton under the given province.
func SeedCanton(t *testing.T, pool *pgxpool.Pool, provinceID int64) domain.Canton {
	t.Helper()

	c := domain.Canton{Name: "Canton " + UniqueSuffix(), ProvinceID: provinceID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO cantons (name, province_id) VALUES ($1, $2) RETURNING id`, c.Name, c.ProvinceID,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCanton: %v", err)
	}
	return c
}

// SeedDistrict inserts a district under the given canton.
func SeedDistrict(t *testing.T, pool *pgxpool.Pool, cantonID int64) domain.District {
	t.Helper()

	d := domain.District{Name: "District " + UniqueSuffix(), CantonID: cantonID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO districts (name, canton_id) VALUES ($1, $2) RETURNING id`, d.Name, d.CantonID,
	).Scan(&d.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedDistrict: %v", err)
	}
	return d
}

// SeedHierarchy inserts a complete province -> canton -> district chain.
func SeedHierarchy(t *testing.T, pool *pgxpool.Pool) Hierarchy {
	t.Helper()

	p := SeedProvince(t, pool)
	c := SeedCanton(t, pool, p.ID)
	d := SeedDistrict(t, pool, c.ID)
	return Hierarchy{Province: p, Canton: c, District: d}
}

// SeedCategory inserts a category with a unique name.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	c := domain.Category{Name: "Cat " + UniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, c.Name,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// LegendOption customizes a legend before SeedLegend inserts it.
type LegendOption func(*domain.Legend)

// WithLegendName overrides the generated legend name.
func WithLegendName(name string) LegendOption {
	return func(l *domain.Legend) { l.Name = name }
}

// WithLegendDate overrides the default legend date.
func WithLegendDate(d time.Time) LegendOption {
	return func(l *domain.Legend) { l.LegendDate = domain.TruncateToDate(d) }
}

// WithLegendImage sets both image fields.
func WithLegendImage(url, publicID string) LegendOption {
	return func(l *domain.Legend) { l.SetImage(url, publicID) }
}

// SeedLegend inserts a legend in the given district and category.
func SeedLegend(t *testing.T, pool *pgxpool.Pool, districtID, categoryID int64, opts ...LegendOption) domain.Legend {
	t.Helper()

	l := domain.Legend{
		Name:        "Legend " + UniqueSuffix(),
		Description: "Seeded legend",
		CategoryID:  categoryID,
		LegendDate:  time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
		DistrictID:  districtID,
	}
	for _, opt := range opts {
		opt(&l)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO legends (name, description, category_id, legend_date, image_url, cloudinary_public_id, district_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		l.Name, l.Description, l.CategoryID, l.LegendDate, l.ImageURL, l.CloudinaryPublicID, l.DistrictID,
	).Scan(&l.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedLegend: %v", err)
	}
	return l
}

// SeedUser inserts a user with a unique email and the given password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool, passwordHash string) domain.User {
	t.Helper()

	u := domain.User{
		Email:        "user-" + UniqueSuffix() + "@example.com",
		PasswordHash: passwordHash,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id, created_at`,
		u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}
