package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/store"
)

type loginRequest struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// LoginHandler checks credentials and returns the stored profile with a
// session token. An unknown username and a wrong password both fail
// with 401 but carry distinct messages, deliberately.
//
// The hash check is a plain string comparison: the client is trusted to
// submit an already-hashed value and no server-side hashing occurs.
func LoginHandler(accounts *store.AccountStore, authSvc *auth.AuthService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if req.Username == "" || req.PasswordHash == "" {
			respondError(w, http.StatusBadRequest, "Missing fields")
			return
		}

		acct, err := accounts.GetByUsername(r.Context(), req.Username)
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "Username not found. Check spelling or sign up.")
			return
		}
		if err != nil {
			logger.Error("login failed", "error", err, "username", req.Username)
			respondError(w, http.StatusInternalServerError, "Server error during login")
			return
		}
		if acct.PasswordHash != req.PasswordHash {
			respondError(w, http.StatusUnauthorized, "Incorrect password.")
			return
		}

		token, err := authSvc.IssueToken(acct.Username)
		if err != nil {
			logger.Error("issue token failed", "error", err, "username", acct.Username)
			respondError(w, http.StatusInternalServerError, "Server error during login")
			return
		}
		respondJSON(w, http.StatusOK, sessionResponse{
			Success:   true,
			Username:  acct.Username,
			FirstName: acct.FirstName,
			LastName:  acct.LastName,
			Token:     token,
		})
	}
}
