package models

// KnowledgeDocument is an uploaded file whose extracted text is injected into
// the chat context block. UploadDate is Unix milliseconds.
type KnowledgeDocument struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Size       int64  `json:"size"`
	Content    string `json:"content"`
	UploadDate int64  `json:"uploadDate"`
}

func (d KnowledgeDocument) Key() string { return d.ID }

// AIConfig is the singleton chat-relay configuration. APIKey is a plaintext
// credential and must never be returned on a public route.
type AIConfig struct {
	Provider     string `json:"provider"`
	ProviderName string `json:"providerName"`
	APIKey       string `json:"apiKey"`
	BaseURL      string `json:"baseUrl"`
	Model        string `json:"model"`
	SystemPrompt string `json:"systemPrompt"`
	// KnowledgeBase is the legacy free-text knowledge field, kept alongside
	// the uploaded document list.
	KnowledgeBase string              `json:"knowledgeBase,omitempty"`
	Documents     []KnowledgeDocument `json:"documents,omitempty"`
}
