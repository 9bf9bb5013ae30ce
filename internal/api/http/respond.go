// Package http holds the request handlers of the grading API. Each
// handler is a pure function of the request: decode, call at most one
// collaborator (grading provider and/or store), encode a JSON response.
// Handlers hold no state across invocations.
package http

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
