package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for legend_date.
const DateLayout = "2006-01-02"

// Legend is the stored legend row.
// ImageURL and CloudinaryPublicID are set together on upload and cleared together.
type Legend struct {
	ID                 int64
	Name               string
	Description        string
	CategoryID         int64
	LegendDate         time.Time
	ImageURL           *string
	CloudinaryPublicID *string
	DistrictID         int64
}

// HasAsset reports whether the legend references an asset on the media host.
func (l *Legend) HasAsset() bool {
	return l.CloudinaryPublicID != nil && *l.CloudinaryPublicID != ""
}

// SetImage stores an uploaded asset reference.
func (l *Legend) SetImage(url, publicID string) {
	l.ImageURL = &url
	l.CloudinaryPublicID = &publicID
}

// ClearImage drops both image fields.
func (l *Legend) ClearImage() {
	l.ImageURL = nil
	l.CloudinaryPublicID = nil
}

// LegendView is the denormalized read projection of a legend: the row itself
// plus the ids and display names of its category, district, canton and province.
type LegendView struct {
	ID                 int64
	Name               string
	Description        string
	LegendDate         time.Time
	ImageURL           *string
	CloudinaryPublicID *string
	CategoryID         int64
	CategoryName       string
	DistrictID         int64
	DistrictName       string
	CantonID           int64
	CantonName         string
	ProvinceID         int64
	ProvinceName       string
}

// LegendFilter holds the optional predicates for a filtered legend listing.
// Nil fields are not applied. All applied predicates are ANDed.
type LegendFilter struct {
	Name       *string
	CategoryID *int64
	DateFrom   *time.Time
	DateTo     *time.Time
	ProvinceID *int64
	CantonID   *int64
	DistrictID *int64
}

// IsEmpty reports whether no predicate is set.
func (f LegendFilter) IsEmpty() bool {
	return (f.Name == nil || strings.TrimSpace(*f.Name) == "") &&
		f.CategoryID == nil && f.DateFrom == nil && f.DateTo == nil &&
		f.ProvinceID == nil && f.CantonID == nil && f.DistrictID == nil
}

// TruncateToDate drops the clock part of t, keeping its calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05", s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return TruncateToDate(t), nil
}
