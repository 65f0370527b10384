package legend

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/heartmarshall/legends-backend/internal/domain"
	"github.com/heartmarshall/legends-backend/internal/validate"
)

// CreateInput holds parameters for creating a legend.
type CreateInput struct {
	Name        string    `json:"name" validate:"required,min=5,max=100"`
	Description string    `json:"description" validate:"required,min=3,max=100"`
	CategoryID  int64     `json:"category_id" validate:"gt=0"`
	LegendDate  time.Time `json:"legend_date" validate:"required"`
	DistrictID  int64     `json:"district_id" validate:"gt=0"`

	// Image is the optional image file to upload.
	Image io.Reader `json:"-"`
}

// Validate checks the create input. Submitted text is stored as given.
func (i *CreateInput) Validate() error {
	return validateText(validate.Struct(i), i.Name, i.Description)
}

func (i *CreateInput) toLegend() *domain.Legend {
	return &domain.Legend{
		Name:        i.Name,
		Description: i.Description,
		CategoryID:  i.CategoryID,
		LegendDate:  domain.TruncateToDate(i.LegendDate),
		DistrictID:  i.DistrictID,
	}
}

// UpdateInput holds parameters for updating a legend. Every scalar field is
// overwritten. Image takes precedence over ImageURL; a nil ImageURL leaves the
// stored image untouched.
type UpdateInput struct {
	ID          int64     `json:"id" validate:"gt=0"`
	Name        string    `json:"name" validate:"required,min=5,max=100"`
	Description string    `json:"description" validate:"required,min=3,max=100"`
	CategoryID  int64     `json:"category_id" validate:"gt=0"`
	LegendDate  time.Time `json:"legend_date" validate:"required"`
	DistrictID  int64     `json:"district_id" validate:"gt=0"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,max=2048"`

	Image io.Reader `json:"-"`
}

// Validate checks the update input. Only image_url is trimmed, so that a
// whitespace value counts as a request to clear the image.
func (i *UpdateInput) Validate() error {
	if i.ImageURL != nil {
		trimmed := strings.TrimSpace(*i.ImageURL)
		i.ImageURL = &trimmed
	}
	return validateText(validate.Struct(i), i.Name, i.Description)
}

// validateText adds a "must not be blank" error for whitespace-only name or
// description values that passed their length tags.
func validateText(err error, name, description string) error {
	verr := &domain.ValidationError{}
	if err != nil && !errors.As(err, &verr) {
		return err
	}
	for _, f := range []struct{ field, value string }{{"name", name}, {"description", description}} {
		if strings.TrimSpace(f.value) == "" && !hasFieldError(verr, f.field) {
			verr.Add(f.field, "must not be blank")
		}
	}
	return verr.OrNil()
}

func hasFieldError(verr *domain.ValidationError, field string) bool {
	for _, fe := range verr.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// apply copies the scalar fields of i onto l.
func (i *UpdateInput) apply(l *domain.Legend) {
	l.Name = i.Name
	l.Description = i.Description
	l.CategoryID = i.CategoryID
	l.LegendDate = domain.TruncateToDate(i.LegendDate)
	l.DistrictID = i.DistrictID
}
