package water

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPreset reads parameters from a YAML preset, starting from base so
// that a partial preset only overrides the fields it names.
func LoadPreset(path string, base Params) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading preset: %w", err)
	}
	p := base
	if err := yaml.Unmarshal(data, &p); err != nil {
		return base, fmt.Errorf("parsing preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return base, fmt.Errorf("invalid preset: %w", err)
	}
	return p, nil
}

// SavePreset writes the parameters as a YAML preset.
func (p *Params) SavePreset(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing preset: %w", err)
	}
	return nil
}
