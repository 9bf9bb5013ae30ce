package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/store"
)

type signupRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// The client submits an already-hashed password; the server stores
	// and compares it as an opaque value.
	PasswordHash string `json:"passwordHash"`
}

type sessionResponse struct {
	Success   bool   `json:"success"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Token     string `json:"token,omitempty"`
}

// SignupHandler creates an account. The username is globally unique; a
// taken name fails with 409 and leaves the account table unchanged.
func SignupHandler(accounts *store.AccountStore, authSvc *auth.AuthService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if req.Username == "" || req.FirstName == "" || req.LastName == "" || req.PasswordHash == "" {
			respondError(w, http.StatusBadRequest, "Missing fields")
			return
		}

		err := accounts.Create(r.Context(), store.Account{
			Username:     req.Username,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PasswordHash: req.PasswordHash,
		})
		if errors.Is(err, store.ErrDuplicate) {
			respondError(w, http.StatusConflict, fmt.Sprintf("Username %q is already taken.", req.Username))
			return
		}
		if err != nil {
			logger.Error("signup failed", "error", err, "username", req.Username)
			respondError(w, http.StatusInternalServerError, "Server error during signup")
			return
		}

		token, err := authSvc.IssueToken(req.Username)
		if err != nil {
			logger.Error("issue token failed", "error", err, "username", req.Username)
			respondError(w, http.StatusInternalServerError, "Server error during signup")
			return
		}
		respondJSON(w, http.StatusOK, sessionResponse{
			Success:   true,
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Token:     token,
		})
	}
}
