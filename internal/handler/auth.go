package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"bimsite/internal/auth"
	"bimsite/internal/httputil"
)

// AuthHandler serves the admin login route.
type AuthHandler struct {
	password string
	tokens   *auth.TokenManager
	logger   *slog.Logger
}

// NewAuthHandler creates an auth handler. password is the configured admin
// password; when empty, login always fails.
func NewAuthHandler(password string, tokens *auth.TokenManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		password: password,
		tokens:   tokens,
		logger:   logger,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges the admin password for a session token.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if h.password == "" ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		h.logger.Warn("admin login rejected", "remote", r.RemoteAddr)
		httputil.RespondError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	token, err := h.tokens.Issue()
	if err != nil {
		h.logger.Error("token issue failed", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("admin login", "remote", r.RemoteAddr)
	httputil.RespondJSON(w, http.StatusOK, loginResponse{Token: token})
}
