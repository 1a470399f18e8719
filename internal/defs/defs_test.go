package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go-rain-overlay/internal/config"
	"go-rain-overlay/internal/obstacle"
)

func loadFresh(t *testing.T) {
	t.Helper()
	PresetLibrary, LayoutLibrary = nil, nil
	if err := LoadBuiltins(); err != nil {
		t.Fatalf("LoadBuiltins: %v", err)
	}
}

func TestBuiltinsLoad(t *testing.T) {
	loadFresh(t)
	for _, id := range []string{"gateway", "builders", "makers"} {
		p, err := Preset(id)
		if err != nil {
			t.Fatalf("preset %s: %v", id, err)
		}
		if _, err := Layout(p.Layout); err != nil {
			t.Fatalf("preset %s points at missing layout: %v", id, err)
		}
		if _, err := p.Options(config.Default()); err != nil {
			t.Fatalf("preset %s has invalid options: %v", id, err)
		}
	}
}

func TestMakersPreset(t *testing.T) {
	loadFresh(t)
	p, err := Preset("makers")
	if err != nil {
		t.Fatal(err)
	}
	opts, err := p.Options(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if opts.Density != 80 || opts.Speed != 1.0 || opts.Color != "#2472b7" || opts.ZIndex != 4 {
		t.Fatalf("makers overrides not applied: %+v", opts)
	}
	def := config.Default()
	if opts.SplashDroplets != def.SplashDroplets || opts.GovernorTargetFPS != def.GovernorTargetFPS {
		t.Fatalf("untouched options must keep defaults")
	}
	if !p.AutoTag {
		t.Fatalf("makers should auto-tag containers")
	}
}

func TestUnknownDefinitions(t *testing.T) {
	loadFresh(t)
	if _, err := Preset("nope"); !errors.Is(err, ErrUnknownDefinition) {
		t.Fatalf("expected ErrUnknownDefinition, got %v", err)
	}
	if _, err := Layout("nope"); !errors.Is(err, ErrUnknownDefinition) {
		t.Fatalf("expected ErrUnknownDefinition, got %v", err)
	}
}

func TestLoadPresetsOverrides(t *testing.T) {
	loadFresh(t)
	path := filepath.Join(t.TempDir(), "presets.yaml")
	data := []byte(`
- id: makers
  layout: makers
  options:
    density: 10
- id: storm
  layout: makers
  options:
    density: 300
    governorMinDrop: 0.2
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadPresets(path); err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	p, _ := Preset("makers")
	if opts, _ := p.Options(config.Default()); opts.Density != 10 {
		t.Fatalf("file should replace built-in makers, density %d", opts.Density)
	}
	storm, err := Preset("storm")
	if err != nil {
		t.Fatal(err)
	}
	opts, err := storm.Options(config.Default())
	if err != nil || opts.Density != 300 || opts.GovernorMinDrop != 0.2 {
		t.Fatalf("storm preset: %+v, %v", opts, err)
	}
}

func TestPresetInvalidOverrides(t *testing.T) {
	loadFresh(t)
	if err := addPresets([]byte("- id: bad\n  options:\n    speed: -1\n")); err != nil {
		t.Fatal(err)
	}
	p, _ := Preset("bad")
	if _, err := p.Options(config.Default()); !errors.Is(err, config.ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions, got %v", err)
	}
	if err := addPresets([]byte("- title: no id\n")); err == nil {
		t.Fatalf("preset without id must be rejected")
	}
	if err := LoadPresets(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing file must fail")
	}
}

func TestLayoutIsCopied(t *testing.T) {
	loadFresh(t)
	a, _ := Layout("makers")
	b, _ := Layout("makers")
	a.SetTag("nav", obstacle.SplashTag, true)
	for _, e := range b.Elements {
		if e.ID == "nav" && e.HasTag(obstacle.SplashTag) {
			t.Fatalf("layouts share state")
		}
	}
}

func TestLoadLayoutFile(t *testing.T) {
	loadFresh(t)
	dir := t.TempDir()
	good := filepath.Join(dir, "page.yaml")
	os.WriteFile(good, []byte("name: page\nelements:\n  - {id: a, kind: section, x: 0, y: 0.5, w: 1, h: 0.2}\n"), 0o644)
	doc, err := LoadLayout(good)
	if err != nil || doc.Name != "page" || len(doc.Elements) != 1 {
		t.Fatalf("LoadLayout: %+v, %v", doc, err)
	}
	if _, err := Layout("page"); err != nil {
		t.Fatalf("loaded layout not registered: %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("name: bad\nelements:\n  - {id: a, w: -1, h: 1}\n"), 0o644)
	if _, err := LoadLayout(bad); err == nil {
		t.Fatalf("negative size must be rejected")
	}
	noname := filepath.Join(dir, "noname.yaml")
	os.WriteFile(noname, []byte("elements: []\n"), 0o644)
	if _, err := LoadLayout(noname); err == nil {
		t.Fatalf("layout without name must be rejected")
	}
}

func TestBuildersAutoTag(t *testing.T) {
	loadFresh(t)
	doc, _ := Layout("builders")
	doc.Resize(1280, 800)
	n := obstacle.AutoTag(doc, obstacle.DefaultAutoTag())
	// showcase, three service cards, portfolio
	if n != 5 {
		t.Fatalf("expected 5 tagged containers, got %d", n)
	}
	p := obstacle.NewDocumentProvider(doc, []string{obstacle.SplashTag})
	if got := len(p.Colliders()); got != 5 {
		t.Fatalf("expected 5 colliders, got %d", got)
	}
}
