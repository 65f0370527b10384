package rest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

// fieldReader parses loosely typed request values (query string or form),
// collecting every malformed field instead of stopping at the first.
type fieldReader struct {
	verr domain.ValidationError
}

func (p *fieldReader) fail(field, msg string) { p.verr.Add(field, msg) }

// optionalID returns nil for an absent or blank value.
func (p *fieldReader) optionalID(field, raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		p.fail(field, "must be a positive integer")
		return nil
	}
	return &id
}

// id returns 0 for an absent value so that required-field validation further
// down reports it.
func (p *fieldReader) id(field, raw string) int64 {
	if v := p.optionalID(field, raw); v != nil {
		return *v
	}
	return 0
}

func (p *fieldReader) optionalDate(field, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		p.fail(field, "must be a date (YYYY-MM-DD)")
		return nil
	}
	return &d
}

func (p *fieldReader) date(field, raw string) time.Time {
	if v := p.optionalDate(field, raw); v != nil {
		return *v
	}
	return time.Time{}
}

func (p *fieldReader) err() error { return p.verr.OrNil() }

// pathID parses the {id} path segment. Non-numeric input is a validation
// error; an integer that can never name a row (zero, negative or beyond int64)
// is reported as not found.
func pathID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	id, err := strconv.ParseInt(raw, 10, 64)
	switch {
	case err == nil && id > 0:
		return id, nil
	case err == nil, errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("id %s: %w", raw, domain.ErrNotFound)
	case raw == "":
		return 0, domain.NewValidationError("id", "is required")
	default:
		return 0, domain.NewValidationError("id", "must be an integer")
	}
}
