package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

type geoService interface {
	ListProvinces(ctx context.Context) ([]domain.Province, error)
	ListCantons(ctx context.Context, provinceID *int64) ([]domain.Canton, error)
	ListDistricts(ctx context.Context, cantonID, provinceID *int64) ([]domain.District, error)
}

// GeoHandler serves the province, canton and district listings.
type GeoHandler struct {
	svc geoService
	log *slog.Logger
}

// NewGeoHandler creates a GeoHandler.
func NewGeoHandler(svc geoService, logger *slog.Logger) *GeoHandler {
	return &GeoHandler{svc: svc, log: logger.With("handler", "geo")}
}

// ListProvinces handles GET /provinces.
func (h *GeoHandler) ListProvinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.svc.ListProvinces(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, errorText{internal: "error retrieving provinces"})
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(provinces, toProvinceResponse))
}

// ListCantons handles GET /cantons?province_id=.
func (h *GeoHandler) ListCantons(w http.ResponseWriter, r *http.Request) {
	var p fieldReader
	provinceID := p.optionalID("province_id", r.URL.Query().Get("province_id"))
	if err := p.err(); err != nil {
		respondError(w, r, h.log, err, errorText{})
		return
	}

	cantons, err := h.svc.ListCantons(r.Context(), provinceID)
	if err != nil {
		respondError(w, r, h.log, err, errorText{internal: "error retrieving cantons"})
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(cantons, toCantonResponse))
}

// ListDistricts handles GET /districts?canton_id=&province_id=.
func (h *GeoHandler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var p fieldReader
	cantonID := p.optionalID("canton_id", q.Get("canton_id"))
	provinceID := p.optionalID("province_id", q.Get("province_id"))
	if err := p.err(); err != nil {
		respondError(w, r, h.log, err, errorText{})
		return
	}

	districts, err := h.svc.ListDistricts(r.Context(), cantonID, provinceID)
	if err != nil {
		respondError(w, r, h.log, err, errorText{internal: "error retrieving districts"})
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(districts, toDistrictResponse))
}
