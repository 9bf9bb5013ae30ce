package http

import (
	"log/slog"
	"net/http"

	"github.com/quizforge/quizforge/internal/store"
)

// LeaderboardHandler returns every registered account with its count of
// distinct completed questions, most completions first, usernames
// ascending on ties. Accounts with zero completions are included.
func LeaderboardHandler(progress *store.ProgressStore, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := progress.Leaderboard(r.Context())
		if err != nil {
			logger.Error("leaderboard query failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Could not load leaderboard")
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}
