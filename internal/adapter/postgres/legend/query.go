package legend

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/legends-backend/internal/adapter/postgres"
	"github.com/heartmarshall/legends-backend/internal/domain"
)

// viewColumns is the flat projection shared by every read; scanView depends on its order.
var viewColumns = []string{
	"l.id",
	"l.name",
	"l.description",
	"l.legend_date",
	"l.image_url",
	"l.cloudinary_public_id",
	"cat.id",
	"cat.name",
	"d.id",
	"d.name",
	"c.id",
	"c.name",
	"p.id",
	"p.name",
}

// baseViewQuery joins a legend with its category and its whole geographic chain.
func baseViewQuery() sq.SelectBuilder {
	return postgres.Builder().
		Select(viewColumns...).
		From("legends l").
		Join("categories cat ON cat.id = l.category_id").
		Join("districts d ON d.id = l.district_id").
		Join("cantons c ON c.id = d.canton_id").
		Join("provinces p ON p.id = c.province_id").
		OrderBy("l.id")
}

func scanView(row pgx.Row) (domain.LegendView, error) {
	var v domain.LegendView
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Description,
		&v.LegendDate,
		&v.ImageURL,
		&v.CloudinaryPublicID,
		&v.CategoryID,
		&v.CategoryName,
		&v.DistrictID,
		&v.DistrictName,
		&v.CantonID,
		&v.CantonName,
		&v.ProvinceID,
		&v.ProvinceName,
	)
	return v, err
}

const legendColumns = `id, name, description, category_id, legend_date, image_url, cloudinary_public_id, district_id`

func scanLegend(row pgx.Row) (domain.Legend, error) {
	var l domain.Legend
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Description,
		&l.CategoryID,
		&l.LegendDate,
		&l.ImageURL,
		&l.CloudinaryPublicID,
		&l.DistrictID,
	)
	return l, err
}
