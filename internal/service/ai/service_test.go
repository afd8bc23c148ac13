package ai

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"bimsite/internal/repository/sqlite"
	"bimsite/internal/store"
)

func testStore(t *testing.T) *store.Content {
	t.Helper()
	repo, err := sqlite.Open(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(repo, logger)
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("load store: %v", err)
	}
	return st
}

func configureChat(t *testing.T, st *store.Content, apiKey, baseURL string) {
	t.Helper()
	cfg := st.AIConfig()
	cfg.APIKey = apiKey
	cfg.BaseURL = baseURL
	cfg.Model = "test-model"
	if err := st.SetAIConfig(context.Background(), cfg); err != nil {
		t.Fatalf("set ai config: %v", err)
	}
}

func newTestService(st *store.Content) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(st, 5*time.Second, logger)
}

func TestGenerateWithoutAPIKey(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	st := testStore(t)
	configureChat(t, st, "", srv.URL)

	got := newTestService(st).GenerateProjectResponse(context.Background(), "你好")

	if got != "请先在管理后台配置 AI API Key。" {
		t.Errorf("unexpected reply: %q", got)
	}
	if hits.Load() != 0 {
		t.Error("upstream must not be called without an API key")
	}
}

func TestGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "你好，这里是项目助手。"}, "finish_reason": "stop"}]
		}`))
	}))
	defer srv.Close()

	st := testStore(t)
	configureChat(t, st, "sk-test", srv.URL)

	got := newTestService(st).GenerateProjectResponse(context.Background(), "你好")

	if got != "你好，这里是项目助手。" {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	st := testStore(t)
	configureChat(t, st, "sk-test", srv.URL)

	got := newTestService(st).GenerateProjectResponse(context.Background(), "你好")

	if got != "连接 AI 服务失败，请检查网络或后台配置的 API Key 是否正确。" {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	st := testStore(t)
	configureChat(t, st, "sk-test", srv.URL)

	got := newTestService(st).GenerateProjectResponse(context.Background(), "你好")

	if got != "抱歉，无法从模型获取回复。" {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestGenerateIncludesLiveContent(t *testing.T) {
	var systemPrompt atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		systemPrompt.Store(string(body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "ok"}}]}`))
	}))
	defer srv.Close()

	st := testStore(t)
	configureChat(t, st, "sk-test", srv.URL)
	info := st.ProjectInfo()
	info.Name = "更新后的项目名"
	if err := st.SetProjectInfo(context.Background(), info); err != nil {
		t.Fatalf("set project info: %v", err)
	}

	newTestService(st).GenerateProjectResponse(context.Background(), "项目叫什么")

	body, _ := systemPrompt.Load().(string)
	if !strings.Contains(body, "更新后的项目名") {
		t.Error("system prompt missing current project name")
	}
	if !strings.Contains(body, "【项目当前实时数据】") {
		t.Error("system prompt missing live data block")
	}
}
