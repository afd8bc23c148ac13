package ai

import (
	"strings"
	"testing"
)

func TestExtractTextPlainFormats(t *testing.T) {
	e := NewExtractor()

	for _, name := range []string{"说明.txt", "readme.md", "data.json", "表格.csv"} {
		got, err := e.ExtractText(name, []byte("原始内容"))
		if err != nil {
			t.Fatalf("ExtractText(%s): %v", name, err)
		}
		if got != "原始内容" {
			t.Errorf("ExtractText(%s) = %q, want raw content", name, got)
		}
	}
}

func TestExtractTextHTMLStripsScripts(t *testing.T) {
	e := NewExtractor()

	html := `<h1>项目介绍</h1><script>alert("xss")</script><p>正文<strong>重点</strong></p>`
	got, err := e.ExtractText("page.html", []byte(html))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}

	if strings.Contains(got, "alert") || strings.Contains(got, "<script>") {
		t.Errorf("script content leaked: %q", got)
	}
	if !strings.Contains(got, "项目介绍") || !strings.Contains(got, "正文") {
		t.Errorf("text content lost: %q", got)
	}
}

func TestExtractTextUnsupportedType(t *testing.T) {
	e := NewExtractor()

	got, err := e.ExtractText("photo.png", []byte{0x89, 0x50})
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if got != "[不支持的文件类型: png]" {
		t.Errorf("unexpected placeholder: %q", got)
	}
}
