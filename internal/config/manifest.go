package config

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Manifest is the subset of action.yml that drives input resolution.
type Manifest struct {
	Name        string
	Description string
	// Inputs keeps the declaration order of action.yml.
	Inputs []InputSpec
}

// InputSpec describes one declared action input.
type InputSpec struct {
	Name        string `yaml:"-"`
	Description string `yaml:"description"`
	Required    bool   `yaml:"required"`
	Default     string `yaml:"default"`
}

type rawManifest struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Inputs      yaml.Node `yaml:"inputs"`
}

// ParseManifest decodes an action.yml document.
func ParseManifest(data []byte) (*Manifest, error) {
	var raw rawManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing action manifest: %w", err)
	}

	m := &Manifest{Name: raw.Name, Description: raw.Description}
	if raw.Inputs.Kind == 0 {
		return m, nil
	}
	if raw.Inputs.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing action manifest: inputs must be a mapping (line %d)", raw.Inputs.Line)
	}

	// Mapping nodes hold alternating key and value nodes.
	for i := 0; i+1 < len(raw.Inputs.Content); i += 2 {
		key, val := raw.Inputs.Content[i], raw.Inputs.Content[i+1]
		var spec InputSpec
		if err := val.Decode(&spec); err != nil {
			return nil, fmt.Errorf("parsing input %q: %w", key.Value, err)
		}
		spec.Name = key.Value
		m.Inputs = append(m.Inputs, spec)
	}
	return m, nil
}

// Input returns the spec for name.
func (m *Manifest) Input(name string) (InputSpec, bool) {
	for _, in := range m.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return InputSpec{}, false
}

// EnvName is the environment variable the Actions runner sets for an input.
func EnvName(input string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(input, " ", "_"))
}

// FlagName is the CLI flag bound to an input.
func FlagName(input string) string {
	return strings.ReplaceAll(input, "_", "-")
}
