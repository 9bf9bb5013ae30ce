package http

import (
	"log/slog"
	"net/http"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/store"
)

type progressResponse struct {
	Username  string  `json:"username"`
	Completed []int64 `json:"completed"`
}

// ProgressHandler returns the authenticated caller's completed question
// IDs. Mounted behind the bearer-token middleware, which puts the
// username in the request context.
func ProgressHandler(progress *store.ProgressStore, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := auth.SubjectFromContext(r.Context())
		if username == "" {
			respondError(w, http.StatusUnauthorized, "missing subject")
			return
		}
		items, err := progress.CompletedItems(r.Context(), username)
		if err != nil {
			logger.Error("progress query failed", "error", err, "username", username)
			respondError(w, http.StatusInternalServerError, "Could not load progress")
			return
		}
		respondJSON(w, http.StatusOK, progressResponse{Username: username, Completed: items})
	}
}
