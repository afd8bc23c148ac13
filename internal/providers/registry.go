// Package providers holds the catalog of supported AI chat providers. The
// presets live in an embedded YAML file so adding a provider never touches
// Go code.
package providers

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/providers.yaml
var configFiles embed.FS

// Preset describes one selectable provider: the default endpoint and model
// the admin dashboard fills in when the provider is picked.
type Preset struct {
	ID          string `yaml:"id" json:"id"`
	DisplayName string `yaml:"displayName" json:"displayName"`
	BaseURL     string `yaml:"baseUrl" json:"baseUrl"`
	Model       string `yaml:"model" json:"model"`
}

// Registry is the loaded provider catalog. Immutable after NewRegistry.
type Registry struct {
	presets []Preset
	byID    map[string]Preset
}

// NewRegistry loads the embedded provider catalog.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/providers.yaml")
	if err != nil {
		return nil, fmt.Errorf("read provider catalog: %w", err)
	}

	var file struct {
		Providers []Preset `yaml:"providers"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal provider catalog: %w", err)
	}
	if len(file.Providers) == 0 {
		return nil, fmt.Errorf("provider catalog is empty")
	}

	r := &Registry{
		presets: file.Providers,
		byID:    make(map[string]Preset, len(file.Providers)),
	}
	for _, p := range file.Providers {
		if p.ID == "" {
			return nil, fmt.Errorf("provider catalog entry missing id")
		}
		if _, ok := r.byID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate provider id %q", p.ID)
		}
		r.byID[p.ID] = p
	}
	return r, nil
}

// List returns all presets in catalog order.
func (r *Registry) List() []Preset {
	out := make([]Preset, len(r.presets))
	copy(out, r.presets)
	return out
}

// Get looks up a preset by provider id.
func (r *Registry) Get(id string) (Preset, bool) {
	p, ok := r.byID[id]
	return p, ok
}
