package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/store"
)

type gradeRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	// Username and QuestionID only gate the progress write; grading
	// proceeds without them. QuestionID is a pointer so an absent field
	// is distinguishable from a literal 0.
	Username   string `json:"username"`
	QuestionID *int64 `json:"questionId"`
}

// GradeHandler grades a free-text answer with the AI provider and, on a
// positive verdict, best-effort records the completion. A store failure
// never changes the response: grading feedback is not held hostage by
// storage availability.
func GradeHandler(grader grading.Grader, progress *store.ProgressStore, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if req.Question == "" || req.Answer == "" {
			respondError(w, http.StatusBadRequest, "Missing question or answer")
			return
		}
		canSave := req.Username != "" && req.QuestionID != nil

		raw, err := grader.Grade(r.Context(), grading.BuildPrompt(req.Question, req.Answer))
		if err != nil {
			var pe *grading.ProviderError
			if errors.As(err, &pe) {
				logger.Error("grading provider error", "provider", pe.Provider, "error", pe.Err)
				respondError(w, http.StatusBadGateway, "AI service error")
				return
			}
			logger.Error("grading failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error during grading")
			return
		}

		verdict := grading.ParseVerdict(raw)

		switch {
		case verdict.Correct() && canSave:
			if err := progress.MarkCompleted(r.Context(), req.Username, *req.QuestionID); err != nil {
				// Non-fatal: the student still sees "Correct".
				logger.Error("progress write failed", "error", err,
					"username", req.Username, "question_id", *req.QuestionID, "raw", raw)
			} else {
				logger.Info("progress saved", "username", req.Username, "question_id", *req.QuestionID)
			}
		case verdict.Correct():
			logger.Warn("answer correct but username/questionId missing, skipping progress write")
		}

		respondJSON(w, http.StatusOK, verdict)
	}
}
