package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubGenerator struct {
	lastMessage string
	reply       string
}

func (s *stubGenerator) GenerateProjectResponse(ctx context.Context, userMessage string) string {
	s.lastMessage = userMessage
	return s.reply
}

func newChatHandler(reply string) (*ChatHandler, *stubGenerator) {
	gen := &stubGenerator{reply: reply}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewChatHandler(gen, logger), gen
}

func TestChatReturnsReply(t *testing.T) {
	h, gen := newChatHandler("项目位于浦东新区。")

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "项目在哪里？"}`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Reply != "项目位于浦东新区。" {
		t.Errorf("unexpected reply %q", resp.Reply)
	}
	if gen.lastMessage != "项目在哪里？" {
		t.Errorf("message not forwarded: %q", gen.lastMessage)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	h, gen := newChatHandler("unused")

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "   "}`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if gen.lastMessage != "" {
		t.Error("generator must not be called for empty messages")
	}
}

func TestChatRejectsMalformedBody(t *testing.T) {
	h, _ := newChatHandler("unused")

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/problem+json" {
		t.Errorf("expected problem+json error, got %q", got)
	}
}
