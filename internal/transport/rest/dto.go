package rest

import "github.com/heartmarshall/legends-backend/internal/domain"

type provinceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type cantonResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ProvinceID int64  `json:"province_id"`
}

type districtResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CantonID int64  `json:"canton_id"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type legendResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	CategoryID         int64   `json:"category_id"`
	LegendDate         string  `json:"legend_date"`
	ImageURL           *string `json:"image_url"`
	CloudinaryPublicID *string `json:"cloudinary_public_id"`
	DistrictID         int64   `json:"district_id"`
}

type legendViewResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	LegendDate         string  `json:"legend_date"`
	ImageURL           *string `json:"image_url"`
	CloudinaryPublicID *string `json:"cloudinary_public_id"`
	CategoryID         int64   `json:"category_id"`
	CategoryName       string  `json:"category_name"`
	DistrictID         int64   `json:"district_id"`
	DistrictName       string  `json:"district_name"`
	CantonID           int64   `json:"canton_id"`
	CantonName         string  `json:"canton_name"`
	ProvinceID         int64   `json:"province_id"`
	ProvinceName       string  `json:"province_name"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// mapSlice converts a result set, always yielding a JSON array (never null).
func mapSlice[T, R any](items []T, f func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, f(it))
	}
	return out
}

func toProvinceResponse(p domain.Province) provinceResponse {
	return provinceResponse{ID: p.ID, Name: p.Name}
}

func toCantonResponse(c domain.Canton) cantonResponse {
	return cantonResponse{ID: c.ID, Name: c.Name, ProvinceID: c.ProvinceID}
}

func toDistrictResponse(d domain.District) districtResponse {
	return districtResponse{ID: d.ID, Name: d.Name, CantonID: d.CantonID}
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name}
}

func toLegendResponse(l *domain.Legend) legendResponse {
	return legendResponse{
		ID:                 l.ID,
		Name:               l.Name,
		Description:        l.Description,
		CategoryID:         l.CategoryID,
		LegendDate:         l.LegendDate.Format(domain.DateLayout),
		ImageURL:           l.ImageURL,
		CloudinaryPublicID: l.CloudinaryPublicID,
		DistrictID:         l.DistrictID,
	}
}

func toLegendViewResponse(v domain.LegendView) legendViewResponse {
	return legendViewResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Description:        v.Description,
		LegendDate:         v.LegendDate.Format(domain.DateLayout),
		ImageURL:           v.ImageURL,
		CloudinaryPublicID: v.CloudinaryPublicID,
		CategoryID:         v.CategoryID,
		CategoryName:       v.CategoryName,
		DistrictID:         v.DistrictID,
		DistrictName:       v.DistrictName,
		CantonID:           v.CantonID,
		CantonName:         v.CantonName,
		ProvinceID:         v.ProvinceID,
		ProvinceName:       v.ProvinceName,
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email}
}
