package utils

import (
	"log/slog"
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{-21, 120},
		{-20, -20},
		{50, 50},
		{120, 120},
		{121, -20},
	}
	for _, tt := range tests {
		if got := Wrap(tt.x, -20, 120); got != tt.want {
			t.Errorf("Wrap(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestPerFrame(t *testing.T) {
	if got := PerFrame(0.9, 1.0/60); math.Abs(got-0.9) > 1e-12 {
		t.Fatalf("one 60Hz frame: got %v", got)
	}
	// два шага по 1/120 == один шаг 1/60
	half := PerFrame(0.9, 1.0/120)
	if math.Abs(half*half-0.9) > 1e-12 {
		t.Fatalf("step split changed result: %v", half*half)
	}
	if PerFrame(0.9, 0) != 1 {
		t.Fatalf("zero step must not decay")
	}
}

func TestClampAndRound(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Fatalf("clamp broken")
	}
	if Round(2.5) != 3 || Round(2.49) != 2 || Round(-2.5) != -3 {
		t.Fatalf("round should go half away from zero")
	}
	if Lerp(10, 20, 0.25) != 12.5 {
		t.Fatalf("lerp broken")
	}
}

func TestPRNGIsReproducible(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Fatalf("zero seed should be replaced")
	}
}

func TestRangesHelpers(t *testing.T) {
	r := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if v := Between(r, 180, 220); v < 180 || v >= 400 {
			t.Fatalf("Between out of range: %v", v)
		}
		if v := Centered(r, 3); v < -3 || v >= 3 {
			t.Fatalf("Centered out of range: %v", v)
		}
		if v := Angle(r); v < 0 || v >= 2*math.Pi {
			t.Fatalf("Angle out of range: %v", v)
		}
	}
}

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("RAIN_TEST_ADDR", "")
	if got := GetEnvDefault("RAIN_TEST_ADDR", "localhost"); got != "localhost" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("RAIN_TEST_ADDR", "0.0.0.0")
	if got := GetEnvDefault("RAIN_TEST_ADDR", "localhost"); got != "0.0.0.0" {
		t.Fatalf("got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
