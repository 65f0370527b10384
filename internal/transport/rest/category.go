package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

type categoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryHandler serves GET /categories.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, errorText{internal: "error retrieving categories"})
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(categories, toCategoryResponse))
}
