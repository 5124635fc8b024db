package server

import (
	"os"
	"path/filepath"
	"testing"

	"SpringRibbon/internal/sim"
)

func TestLoadParamsMissingFileUsesBase(t *testing.T) {
	base := sim.DefaultParams()
	got, err := loadParamsFromFile(filepath.Join(t.TempDir(), "nope.json"), base)
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if got != sim.SanitizeParams(base) {
		t.Fatalf("params changed without a config file: %+v", got)
	}
}

func TestLoadParamsMergesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	blob := `{"spring": {"stiffness": 0.3, "segments": 6}}`
	if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := loadParamsFromFile(path, sim.DefaultParams())
	if err != nil {
		t.Fatalf("loadParamsFromFile: %v", err)
	}
	if got.Stiffness != 0.3 {
		t.Fatalf("stiffness = %g, want 0.3", got.Stiffness)
	}
	if got.SegmentCount != 6 {
		t.Fatalf("segments = %d, want 6", got.SegmentCount)
	}
	if got.Damping != sim.DefaultDamping {
		t.Fatalf("unset field changed: damping = %g", got.Damping)
	}
}

func TestLoadParamsRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadParamsFromFile(path, sim.DefaultParams()); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestOverridesApplyAndSanitize(t *testing.T) {
	stiff := 0.25
	segs := 10_000
	physics := false
	o := ParamOverrides{Stiffness: &stiff, Segments: &segs, Physics: &physics}

	got := o.apply(sim.DefaultParams())
	if got.Stiffness != 0.25 {
		t.Fatalf("stiffness = %g, want 0.25", got.Stiffness)
	}
	if got.PhysicsEnabled {
		t.Fatal("physics override not applied")
	}
	if got.SegmentCount != sim.MaxSegments {
		t.Fatalf("segment override not clamped: %d", got.SegmentCount)
	}
}
