package ai

import (
	"fmt"
	"path/filepath"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/microcosm-cc/bluemonday"
)

// Extractor turns uploaded knowledge files into plain text for the prompt.
// HTML goes through sanitize-then-convert so script tags and event handlers
// never reach the model context.
type Extractor struct {
	policy    *bluemonday.Policy
	converter *md.Converter
}

// NewExtractor creates a text extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		policy:    bluemonday.UGCPolicy(),
		converter: md.NewConverter("", true, nil),
	}
}

// ExtractText returns the prompt text for one uploaded file. Unsupported
// types produce a placeholder instead of an error so a mixed batch still
// registers every file.
func (e *Extractor) ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	switch ext {
	case "txt", "md", "json", "csv":
		return string(data), nil
	case "html", "htm":
		sanitized := e.policy.Sanitize(string(data))
		markdown, err := e.converter.ConvertString(sanitized)
		if err != nil {
			return "", fmt.Errorf("convert html to markdown: %w", err)
		}
		return markdown, nil
	default:
		return fmt.Sprintf("[不支持的文件类型: %s]", ext), nil
	}
}
