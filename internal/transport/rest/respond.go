package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/legends-backend/internal/domain"
)

type errorResponse struct {
	Detail string               `json:"detail"`
	Errors []fieldErrorResponse `json:"errors,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorText is the client-facing wording for the failures a handler can hit.
// Empty fields fall back to generic messages.
type errorText struct {
	notFound string
	conflict string
	internal string
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// respondError maps a service error onto a status code. Anything that is not a
// known domain error is logged and reported as a bare 500.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, text errorText) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Detail: "validation failed"}
		for _, fe := range verr.Errors {
			resp.Errors = append(resp.Errors, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation failed")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, orDefault(text.notFound, "not found"))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, orDefault(text.conflict, "already exists"))
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
			slog.Bool("asset_upload", errors.Is(err, domain.ErrAssetUpload)),
		)
		writeError(w, http.StatusInternalServerError, orDefault(text.internal, "internal server error"))
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
