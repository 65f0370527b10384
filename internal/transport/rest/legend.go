package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/legends-backend/internal/domain"
	"github.com/heartmarshall/legends-backend/internal/service/legend"
)

// multipartMemory is how much of a multipart body is kept in memory before
// file parts spill to disk.
const multipartMemory = 8 << 20

type legendService interface {
	List(ctx context.Context) ([]domain.LegendView, error)
	Filter(ctx context.Context, f domain.LegendFilter) ([]domain.LegendView, error)
	Get(ctx context.Context, id int64) (*domain.LegendView, error)
	Create(ctx context.Context, input legend.CreateInput) (*domain.Legend, error)
	Update(ctx context.Context, input legend.UpdateInput) (*domain.Legend, error)
	Delete(ctx context.Context, id int64) error
}

// LegendHandler serves the /legends routes.
type LegendHandler struct {
	svc       legendService
	log       *slog.Logger
	maxUpload int64
}

// NewLegendHandler creates a LegendHandler. maxUploadBytes caps the whole
// request body of create and update.
func NewLegendHandler(svc legendService, logger *slog.Logger, maxUploadBytes int64) *LegendHandler {
	return &LegendHandler{svc: svc, log: logger.With("handler", "legend"), maxUpload: maxUploadBytes}
}

var (
	legendReadText   = errorText{notFound: "Legend not found", internal: "error retrieving legends"}
	legendWriteText  = errorText{notFound: "Legend not found", internal: "error saving legend"}
	legendDeleteText = errorText{notFound: "Legend not found", internal: "error deleting legend"}
)

// List handles GET /legends.
func (h *LegendHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, legendReadText)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(views, toLegendViewResponse))
}

// Filter handles GET /legends/filters.
func (h *LegendHandler) Filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var p fieldReader
	f := domain.LegendFilter{
		CategoryID: p.optionalID("category_id", q.Get("category_id")),
		DateFrom:   p.optionalDate("legend_date_initial", q.Get("legend_date_initial")),
		DateTo:     p.optionalDate("legend_date_final", q.Get("legend_date_final")),
		ProvinceID: p.optionalID("province_id", q.Get("province_id")),
		CantonID:   p.optionalID("canton_id", q.Get("canton_id")),
		DistrictID: p.optionalID("district_id", q.Get("district_id")),
	}
	if name := strings.TrimSpace(q.Get("name")); name != "" {
		f.Name = &name
	}
	if err := p.err(); err != nil {
		respondError(w, r, h.log, err, errorText{})
		return
	}

	views, err := h.svc.Filter(r.Context(), f)
	if err != nil {
		respondError(w, r, h.log, err, legendReadText)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(views, toLegendViewResponse))
}

// Get handles GET /legends/{id}.
func (h *LegendHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, err, legendReadText)
		return
	}

	view, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, legendReadText)
		return
	}
	writeJSON(w, http.StatusOK, toLegendViewResponse(*view))
}

// Create handles POST /legends (multipart form).
func (h *LegendHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	defer cleanupForm(r)

	var p fieldReader
	input := legend.CreateInput{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		CategoryID:  p.id("category_id", r.PostFormValue("category_id")),
		LegendDate:  p.date("legend_date", r.PostFormValue("legend_date")),
		DistrictID:  p.id("district_id", r.PostFormValue("district_id")),
	}
	if err := p.err(); err != nil {
		respondError(w, r, h.log, err, errorText{})
		return
	}

	image, closeImage, err := formImage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid image_file")
		return
	}
	defer closeImage()
	input.Image = image

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err, errorText{internal: "error creating legend"})
		return
	}
	writeJSON(w, http.StatusCreated, toLegendResponse(created))
}

// Update handles PATCH /legends/{id} (multipart form). A present image_url
// field is forwarded even when empty, which clears the stored image.
func (h *LegendHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, err, legendWriteText)
		return
	}
	if !h.parseForm(w, r) {
		return
	}
	defer cleanupForm(r)

	var p fieldReader
	input := legend.UpdateInput{
		ID:          id,
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		CategoryID:  p.id("category_id", r.PostFormValue("category_id")),
		LegendDate:  p.date("legend_date", r.PostFormValue("legend_date")),
		DistrictID:  p.id("district_id", r.PostFormValue("district_id")),
	}
	if vals, ok := r.PostForm["image_url"]; ok && len(vals) > 0 {
		url := vals[0]
		input.ImageURL = &url
	}
	if err := p.err(); err != nil {
		respondError(w, r, h.log, err, errorText{})
		return
	}

	image, closeImage, err := formImage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid image_file")
		return
	}
	defer closeImage()
	input.Image = image

	updated, err := h.svc.Update(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err, legendWriteText)
		return
	}
	writeJSON(w, http.StatusOK, toLegendResponse(updated))
}

// Delete handles DELETE /legends/{id}.
func (h *LegendHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, err, legendDeleteText)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err, legendDeleteText)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "Legend deleted successfully."})
}

// parseForm reads a multipart or urlencoded body capped at maxUpload bytes.
// It writes the error response itself and reports whether to continue.
func (h *LegendHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	err := r.ParseMultipartForm(multipartMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return false
	}
	writeError(w, http.StatusBadRequest, "invalid form body")
	return false
}

func cleanupForm(r *http.Request) {
	if r.MultipartForm != nil {
		r.MultipartForm.RemoveAll() //nolint:errcheck
	}
}

// formImage returns the image_file part, or nil when none (or an empty one)
// was sent. The returned func closes the part and is always safe to call.
func formImage(r *http.Request) (io.Reader, func(), error) {
	noop := func() {}

	file, hdr, err := r.FormFile("image_file")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return nil, noop, nil
	case err != nil:
		return nil, noop, err
	}
	if hdr.Size == 0 {
		file.Close()
		return nil, noop, nil
	}
	return file, func() { file.Close() }, nil
}
