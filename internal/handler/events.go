package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"bimsite/internal/store"
)

// Comment lines keep idle proxies from dropping the stream.
const keepAliveInterval = 25 * time.Second

// EventsHandler streams content-change notifications over SSE so open
// browser tabs can refetch without polling.
type EventsHandler struct {
	store  *store.Content
	logger *slog.Logger
}

// NewEventsHandler creates an SSE events handler.
func NewEventsHandler(st *store.Content, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{store: st, logger: logger}
}

// Stream sends one "change" event per mutated entity until the client
// disconnects.
// GET /api/content/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	changes, cancel := h.store.Subscribe()
	defer cancel()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case entity := <-changes:
			if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", entity); err != nil {
				h.logger.Debug("sse write failed", "error", err)
				return
			}
			flusher.Flush()
		case <-ticker.C:
			// SSE comment line, ignored by clients.
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
