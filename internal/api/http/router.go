package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/store"
)

// Routes mounts the API surface on r. Method enforcement (405) comes
// from chi's per-method routing.
func Routes(r chi.Router, grader grading.Grader, accounts *store.AccountStore, progress *store.ProgressStore, authSvc *auth.AuthService, logger *slog.Logger) {
	r.Route("/api", func(ar chi.Router) {
		ar.Post("/grade", GradeHandler(grader, progress, logger))
		ar.Get("/leaderboard", LeaderboardHandler(progress, logger))
		ar.Post("/signup", SignupHandler(accounts, authSvc, logger))
		ar.Post("/login", LoginHandler(accounts, authSvc, logger))

		ar.Group(func(pr chi.Router) {
			pr.Use(auth.Middleware(authSvc))
			pr.Get("/progress", ProgressHandler(progress, logger))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
}
