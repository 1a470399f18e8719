// internal/defs/layouts.go
package defs

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"go-rain-overlay/internal/obstacle"
)

// LayoutLibrary holds page layouts keyed by name.
var LayoutLibrary map[string]*obstacle.Document

// LoadLayout reads a layout file, registers it under its name and returns it.
func LoadLayout(path string) (*obstacle.Document, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	return addLayout(file)
}

func addLayout(data []byte) (*obstacle.Document, error) {
	var doc obstacle.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal layout: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("layout without name")
	}
	for i, e := range doc.Elements {
		if e.W < 0 || e.H < 0 {
			return nil, fmt.Errorf("layout %q: element %d (%s) has negative size", doc.Name, i, e.ID)
		}
	}
	if LayoutLibrary == nil {
		LayoutLibrary = make(map[string]*obstacle.Document)
	}
	LayoutLibrary[doc.Name] = &doc
	return &doc, nil
}

// Layout returns a private copy of the named layout, safe to resize and tag.
func Layout(name string) (*obstacle.Document, error) {
	doc, ok := LayoutLibrary[name]
	if !ok {
		return nil, fmt.Errorf("layout %q: %w", name, ErrUnknownDefinition)
	}
	return doc.Clone(), nil
}

func isLayoutFile(name string) bool {
	return strings.HasPrefix(name, "layout_") && strings.HasSuffix(name, ".yaml")
}
