package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file and lays it over Default(). Keys missing from the
// file keep their default values.
func Load(path string) (Options, error) {
	return LoadWith(path, Default())
}

// LoadWith is Load over an explicit base, e.g. a preset's options.
func LoadWith(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read overlay options file: %w", err)
	}
	return Parse(data, base)
}

// Parse decodes YAML on top of base and validates the result.
func Parse(data []byte, base Options) (Options, error) {
	opts := base
	// копия, чтобы не делить слайс с base
	opts.CollideSelectors = append([]string(nil), base.CollideSelectors...)
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to unmarshal overlay options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
