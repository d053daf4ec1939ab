package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default yaml) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultJumperConfig()) {
		t.Errorf("embedded yaml and DefaultJumperConfig() differ:\n yaml: %+v\n code: %+v", cfg, DefaultJumperConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadJumperCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  move_speed: 260\nrules:\n  lose_margin: 150\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadJumper(path)
	if err != nil {
		t.Fatalf("LoadJumper() failed: %v", err)
	}

	if cfg.Player.MoveSpeed != 260 {
		t.Errorf("MoveSpeed = %v, expected 260", cfg.Player.MoveSpeed)
	}
	if cfg.Rules.LoseMargin != 150 {
		t.Errorf("LoseMargin = %v, expected 150", cfg.Rules.LoseMargin)
	}
	// Keys not named in the file keep their defaults
	if cfg.Player.JumpVelocity != -450 {
		t.Errorf("JumpVelocity = %v, expected default -450", cfg.Player.JumpVelocity)
	}
}

func TestLoadJumperMissingCustomPath(t *testing.T) {
	_, err := LoadJumper(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadJumper() with a missing custom path should fail")
	}
}

func TestLoadJumperRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("platforms:\n  min_gap: 130\n  max_gap: 120\nplayer:\n  jump_velocity: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := LoadJumper(path)
	if err == nil {
		t.Fatal("LoadJumper() should reject inverted gap range")
	}
	msg := err.Error()
	if !strings.Contains(msg, "min_gap") || !strings.Contains(msg, "jump_velocity") {
		t.Errorf("error should report every problem, got %q", msg)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := DefaultJumperConfig()
	want.Clouds.Count = 7

	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got.Clouds.Count != 7 {
		t.Errorf("Clouds.Count = %d, expected 7", got.Clouds.Count)
	}
}
