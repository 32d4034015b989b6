package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kitewing/vsmgo/internal/solver"
)

func TestDefaultSettingsBuild(t *testing.T) {
	s := DefaultSettings()
	wings, err := s.BuildWings()
	if err != nil {
		t.Fatalf("BuildWings: %v", err)
	}
	if len(wings) != 1 {
		t.Fatalf("expected 1 wing, got %d", len(wings))
	}

	cfg, err := s.SolverSettings.ToConfig()
	if err != nil {
		t.Fatalf("ToConfig: %v", err)
	}
	if cfg.Model != solver.VSM {
		t.Errorf("expected VSM, got %v", cfg.Model)
	}
	if cfg.Rtol <= 0 {
		t.Error("rtol should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	s := GetPreset("rectangular", "low_alpha")
	if s == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(s.Wings) != 1 || len(s.Wings[0].Sections) != 2 {
		t.Fatalf("unexpected preset shape: %+v", s.Wings)
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if GetPreset("rectangular", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "low_alpha") != nil {
		t.Error("expected nil for nonexistent category")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("rectangular")
	if len(names) == 0 {
		t.Error("expected presets for rectangular")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent category")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	s := GetPreset("rectangular", "llt")
	if err := Save(path, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.SolverSettings.AerodynamicModelType != "LLT" {
		t.Errorf("expected LLT, got %s", loaded.SolverSettings.AerodynamicModelType)
	}
}

func TestUnknownDistributionErrors(t *testing.T) {
	spec := WingSpec{NPanels: 2, Distribution: "NOT_A_DISTRIBUTION"}
	if _, err := spec.Build(); err == nil {
		t.Fatal("expected error for unknown distribution")
	}
}
