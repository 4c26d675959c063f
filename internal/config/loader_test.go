package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	want := DefaultBambooConfig()

	if cfg.Arena != want.Arena || cfg.Paddle != want.Paddle || cfg.Ball != want.Ball || cfg.Blocks != want.Blocks {
		t.Errorf("embedded geometry differs from hardcoded defaults:\n got %+v\nwant %+v", cfg, want)
	}
	if cfg.DefaultProfile != want.DefaultProfile {
		t.Errorf("DefaultProfile = %q, want %q", cfg.DefaultProfile, want.DefaultProfile)
	}
	for _, name := range want.ProfileNames() {
		got, err := cfg.Profile(name)
		if err != nil {
			t.Fatalf("Profile(%q): %v", name, err)
		}
		if got.TotalBlocks() != want.Profiles[name].TotalBlocks() {
			t.Errorf("profile %q: TotalBlocks = %d, want %d", name, got.TotalBlocks(), want.Profiles[name].TotalBlocks())
		}
		if strings.Join(got.ContactMask, ",") != strings.Join(want.Profiles[name].ContactMask, ",") {
			t.Errorf("profile %q: ContactMask = %v, want %v", name, got.ContactMask, want.Profiles[name].ContactMask)
		}
	}
}

func TestProfileTotals(t *testing.T) {
	cfg := DefaultBambooConfig()
	tests := []struct {
		name string
		want int
	}{
		{ProfileBasic, 8},
		{ProfileEnhanced, 16},
		{"", 16}, // default profile
	}
	for _, tt := range tests {
		p, err := cfg.Profile(tt.name)
		if err != nil {
			t.Fatalf("Profile(%q): %v", tt.name, err)
		}
		if got := p.TotalBlocks(); got != tt.want {
			t.Errorf("Profile(%q).TotalBlocks() = %d, want %d", tt.name, got, tt.want)
		}
	}

	if _, err := cfg.Profile("turbo"); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte("ball:\n  max_speed: 500\n")
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Ball.MaxSpeed != 500 {
		t.Errorf("MaxSpeed = %v, want 500", cfg.Ball.MaxSpeed)
	}
	if cfg.Ball.Radius != DefaultBambooConfig().Ball.Radius {
		t.Errorf("Radius = %v, want default %v", cfg.Ball.Radius, DefaultBambooConfig().Ball.Radius)
	}
	if len(cfg.Profiles) != 2 {
		t.Errorf("expected default profiles to survive, got %v", cfg.ProfileNames())
	}
}

func TestParseProfilesReplaceDefaults(t *testing.T) {
	data := []byte(`
default_profile: solo
profiles:
  solo:
    count: 4
    contact_mask: [bottom, block]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if names := cfg.ProfileNames(); len(names) != 1 || names[0] != "solo" {
		t.Errorf("ProfileNames = %v, want [solo]", names)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "arena: [1, 2"},
		{"zero arena", "arena:\n  width: 0\n"},
		{"wide paddle", "paddle:\n  width: 5000\n"},
		{"missing default", "default_profile: nope\n"},
		{"too many blocks", "profiles:\n  x:\n    count: 40\ndefault_profile: x\n"},
		{"row above arena", "blocks:\n  row_height: 1.2\n"},
		{"row below arena", "blocks:\n  row_height: -0.1\n"},
		{"row touching ceiling", "blocks:\n  row_height: 0.99\n"},
		{"stacked row above arena", "blocks:\n  row_step: 0.2\n"},
		{"paddle above arena", "paddle:\n  y: 900\n"},
		{"paddle below floor", "paddle:\n  y: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestParseStackedRowOnlyCheckedWhenStacked(t *testing.T) {
	yaml := "blocks:\n  row_step: 0.2\nprofiles:\n  flat:\n    count: 8\ndefault_profile: flat\n"
	if _, err := Parse([]byte(yaml)); err != nil {
		t.Errorf("unstacked profile rejected: %v", err)
	}
}

func TestLoadBambooCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("paddle:\n  width: 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBamboo(path)
	if err != nil {
		t.Fatalf("LoadBamboo: %v", err)
	}
	if cfg.Paddle.Width != 200 {
		t.Errorf("Paddle.Width = %v, want 200", cfg.Paddle.Width)
	}

	if _, err := LoadBamboo(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestDifficultyPresets(t *testing.T) {
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("expected error for unknown difficulty")
	}

	base := DefaultBambooConfig()

	easy := DefaultBambooConfig()
	ApplyBambooPreset(&easy, DifficultyEasy)
	if easy.Paddle.Width <= base.Paddle.Width {
		t.Errorf("easy paddle %v should be wider than %v", easy.Paddle.Width, base.Paddle.Width)
	}

	hard := DefaultBambooConfig()
	ApplyBambooPreset(&hard, DifficultyHard)
	if hard.Ball.LaunchImpulse <= base.Ball.LaunchImpulse {
		t.Errorf("hard launch impulse %v should exceed %v", hard.Ball.LaunchImpulse, base.Ball.LaunchImpulse)
	}

	normal := DefaultBambooConfig()
	ApplyBambooPreset(&normal, DifficultyNormal)
	if normal.Paddle != base.Paddle || normal.Ball != base.Ball {
		t.Error("normal preset should leave the config unchanged")
	}
}
