package middleware

import (
	"encoding/json"
	"net/http"
)

// writeDetail writes the API's JSON error shape from inside a middleware.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
