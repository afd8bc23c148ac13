package providers

import "testing"

func TestRegistryLoadsEmbeddedCatalog(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	presets := r.List()
	if len(presets) != 4 {
		t.Fatalf("expected 4 presets, got %d", len(presets))
	}

	deepseek, ok := r.Get("deepseek")
	if !ok {
		t.Fatal("deepseek preset missing")
	}
	if deepseek.BaseURL != "https://api.deepseek.com" || deepseek.Model != "deepseek-chat" {
		t.Errorf("unexpected deepseek preset: %+v", deepseek)
	}

	custom, ok := r.Get("custom")
	if !ok {
		t.Fatal("custom preset missing")
	}
	if custom.BaseURL != "" || custom.Model != "" {
		t.Errorf("custom preset should leave endpoint and model empty: %+v", custom)
	}
}

func TestRegistryUnknownProvider(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if _, ok := r.Get("gemini"); ok {
		t.Error("unexpected preset for unknown id")
	}
}
