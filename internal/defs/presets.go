// internal/defs/presets.go
package defs

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"go-rain-overlay/internal/config"
)

//go:embed data/*.yaml
var builtin embed.FS

// ErrUnknownDefinition is returned for preset or layout ids that are not loaded.
var ErrUnknownDefinition = errors.New("unknown definition")

// PresetDefinition is the overlay setup of one site.
type PresetDefinition struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Layout  string `yaml:"layout"`
	AutoTag bool   `yaml:"autoTag"` // пометить крупные контейнеры как препятствия
	// Overrides is laid over the base options as-is.
	Overrides yaml.Node `yaml:"options"`
}

// Options returns base with the preset's overrides applied and validated.
func (p PresetDefinition) Options(base config.Options) (config.Options, error) {
	if p.Overrides.Kind == 0 {
		if err := base.Validate(); err != nil {
			return config.Options{}, fmt.Errorf("preset %q: %w", p.ID, err)
		}
		return base, nil
	}
	raw, err := yaml.Marshal(&p.Overrides)
	if err != nil {
		return config.Options{}, fmt.Errorf("preset %q: failed to encode overrides: %w", p.ID, err)
	}
	opts, err := config.Parse(raw, base)
	if err != nil {
		return config.Options{}, fmt.Errorf("preset %q: %w", p.ID, err)
	}
	return opts, nil
}

// PresetLibrary is a map to hold all preset definitions, keyed by their ID.
var PresetLibrary map[string]PresetDefinition

// LoadPresets reads a preset file and adds its definitions to PresetLibrary,
// replacing presets with the same id.
func LoadPresets(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read preset definitions file: %w", err)
	}
	return addPresets(file)
}

func addPresets(data []byte) error {
	var presetDefs []PresetDefinition
	if err := yaml.Unmarshal(data, &presetDefs); err != nil {
		return fmt.Errorf("failed to unmarshal preset definitions: %w", err)
	}
	if PresetLibrary == nil {
		PresetLibrary = make(map[string]PresetDefinition)
	}
	for _, def := range presetDefs {
		if def.ID == "" {
			return fmt.Errorf("preset definition without id")
		}
		PresetLibrary[def.ID] = def
	}
	return nil
}

// Preset looks id up in PresetLibrary.
func Preset(id string) (PresetDefinition, error) {
	def, ok := PresetLibrary[id]
	if !ok {
		return PresetDefinition{}, fmt.Errorf("preset %q: %w", id, ErrUnknownDefinition)
	}
	return def, nil
}

// LoadBuiltins fills PresetLibrary and LayoutLibrary from the definitions
// compiled into the binary. Files loaded afterwards override them.
func LoadBuiltins() error {
	data, err := builtin.ReadFile("data/presets.yaml")
	if err != nil {
		return fmt.Errorf("failed to read built-in presets: %w", err)
	}
	if err := addPresets(data); err != nil {
		return err
	}

	entries, err := builtin.ReadDir("data")
	if err != nil {
		return fmt.Errorf("failed to list built-in layouts: %w", err)
	}
	for _, e := range entries {
		if !isLayoutFile(e.Name()) {
			continue
		}
		data, err := builtin.ReadFile("data/" + e.Name())
		if err != nil {
			return fmt.Errorf("failed to read built-in layout %s: %w", e.Name(), err)
		}
		if _, err := addLayout(data); err != nil {
			return fmt.Errorf("built-in layout %s: %w", e.Name(), err)
		}
	}
	return nil
}
