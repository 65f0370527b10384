package legend

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applyFilter ANDs every set predicate of f onto q.
// Date bounds are inclusive; either one alone is an open range.
func applyFilter(q sq.SelectBuilder, f domain.LegendFilter) sq.SelectBuilder {
	if f.Name != nil {
		if name := strings.TrimSpace(*f.Name); name != "" {
			q = q.Where(sq.ILike{"l.name": "%" + likeEscaper.Replace(name) + "%"})
		}
	}
	if f.CategoryID != nil {
		q = q.Where(sq.Eq{"l.category_id": *f.CategoryID})
	}
	if f.DateFrom != nil {
		q = q.Where(sq.GtOrEq{"l.legend_date": domain.TruncateToDate(*f.DateFrom)})
	}
	if f.DateTo != nil {
		q = q.Where(sq.LtOrEq{"l.legend_date": domain.TruncateToDate(*f.DateTo)})
	}
	if f.ProvinceID != nil {
		q = q.Where(sq.Eq{"p.id": *f.ProvinceID})
	}
	if f.CantonID != nil {
		q = q.Where(sq.Eq{"c.id": *f.CantonID})
	}
	if f.DistrictID != nil {
		q = q.Where(sq.Eq{"d.id": *f.DistrictID})
	}
	return q
}
