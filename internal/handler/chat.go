package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"bimsite/internal/httputil"
)

// ResponseGenerator answers one visitor message. Satisfied by the ai
// service; a fake stands in for it in tests.
type ResponseGenerator interface {
	GenerateProjectResponse(ctx context.Context, userMessage string) string
}

// ChatHandler serves the public visitor chat route.
type ChatHandler struct {
	generator ResponseGenerator
	logger    *slog.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(generator ResponseGenerator, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{generator: generator, logger: logger}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat relays one visitor message to the configured AI provider.
// POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		httputil.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := h.generator.GenerateProjectResponse(r.Context(), message)
	httputil.RespondJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
