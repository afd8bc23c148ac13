// Package ai relays visitor questions to the configured OpenAI-compatible
// chat endpoint with the live site content injected as context. Failures
// surface as friendly Chinese messages instead of errors so the chat widget
// always has something to display.
package ai

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"bimsite/internal/domain/models"
	"bimsite/internal/store"
)

// Canned replies shown to visitors. These match what the frontend already
// displays, so the widget needs no error mapping of its own.
const (
	msgNoAPIKey       = "请先在管理后台配置 AI API Key。"
	msgRequestFailed  = "连接 AI 服务失败，请检查网络或后台配置的 API Key 是否正确。"
	msgEmptyResponse  = "抱歉，无法从模型获取回复。"
	defaultChatWindow = 60 * time.Second
)

// Service relays chat messages through the configured provider.
type Service struct {
	store   *store.Content
	timeout time.Duration
	logger  *slog.Logger
}

// NewService creates a chat relay. timeout bounds each upstream request.
func NewService(st *store.Content, timeout time.Duration, logger *slog.Logger) *Service {
	if timeout <= 0 {
		timeout = defaultChatWindow
	}
	return &Service{store: st, timeout: timeout, logger: logger}
}

// GenerateProjectResponse answers one visitor message using the current AI
// configuration and content snapshot. The returned string is always
// displayable; upstream failures map to the canned messages above.
func (s *Service) GenerateProjectResponse(ctx context.Context, userMessage string) string {
	cfg := s.store.AIConfig()
	if cfg.APIKey == "" {
		return msgNoAPIKey
	}

	systemPrompt := cfg.SystemPrompt + "\n\n" + BuildContext(ContextData{
		ProjectInfo:  s.store.ProjectInfo(),
		Highlights:   s.store.Highlights(),
		Achievements: s.store.Achievements(),
		TeamMembers:  s.store.TeamMembers(),
		Documents:    cfg.Documents,
	}, cfg.KnowledgeBase)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.complete(ctx, cfg, systemPrompt, userMessage)
	if err != nil {
		s.logger.Error("chat completion failed",
			"provider", cfg.Provider,
			"model", cfg.Model,
			"error", err,
		)
		return msgRequestFailed
	}
	if reply == "" {
		return msgEmptyResponse
	}
	return reply
}

// complete performs a single chat completion request. The client is built
// per call because the admin can change provider, key, and endpoint at any
// time. Retries stay off so a misconfigured key fails fast.
func (s *Service) complete(ctx context.Context, cfg models.AIConfig, systemPrompt, userMessage string) (string, error) {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")+"/"),
		option.WithMaxRetries(0),
	)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(1024),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
