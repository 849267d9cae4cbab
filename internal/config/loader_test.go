package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		t.Fatalf("embedded runner.yaml failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded defaults drifted from DefaultRunnerConfig():\n got %+v\nwant %+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("physics:\n  gravity: 1.2\nspawn:\n  min_interval: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}

	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("Gravity = %v, expected 1.2", cfg.Physics.Gravity)
	}
	if cfg.Spawn.MinInterval != 30 {
		t.Errorf("MinInterval = %v, expected 30", cfg.Spawn.MinInterval)
	}
	// Untouched keys keep the defaults
	if cfg.Physics.JumpImpulse != -17.0 {
		t.Errorf("JumpImpulse = %v, expected default -17", cfg.Physics.JumpImpulse)
	}
	if cfg.Spawn.MaxInterval != 90 {
		t.Errorf("MaxInterval = %v, expected default 90", cfg.Spawn.MaxInterval)
	}
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  jump_impulse: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Error("expected validation error for upward-positive jump impulse")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }},
		{"inverted spawn interval", func(c *RunnerConfig) { c.Spawn.MaxInterval = c.Spawn.MinInterval - 1 }},
		{"ground below track", func(c *RunnerConfig) { c.Track.GroundY = c.Track.Height + 1 }},
		{"no steps per refresh", func(c *RunnerConfig) { c.Loop.MaxSteps = 0 }},
		{"zero particle decay", func(c *RunnerConfig) { c.Particles.Decay = 0 }},
	}

	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should have failed")
			}
		})
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if got := cfg.Loop.StepDuration(); got != time.Second/60 {
		t.Errorf("StepDuration() = %v, expected %v", got, time.Second/60)
	}
	if got := cfg.Session.Cooldown(); got != 800*time.Millisecond {
		t.Errorf("Cooldown() = %v, expected 800ms", got)
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	ref := DefaultRunnerConfig()

	easy := DefaultRunnerConfig()
	ApplyRunnerPreset(&easy, DifficultyEasy)
	if easy.Speed.Initial >= ref.Speed.Initial || easy.Speed.Increment >= ref.Speed.Increment {
		t.Errorf("easy should be slower than reference: %+v", easy.Speed)
	}

	hard := DefaultRunnerConfig()
	ApplyRunnerPreset(&hard, DifficultyHard)
	if hard.Speed.Initial <= ref.Speed.Initial || hard.Speed.Increment <= ref.Speed.Increment {
		t.Errorf("hard should be faster than reference: %+v", hard.Speed)
	}

	fixed := DefaultRunnerConfig()
	ApplyRunnerPreset(&fixed, DifficultyFixed)
	if fixed.Speed.Increment != 0 || fixed.Speed.Initial != ref.Speed.Initial {
		t.Errorf("fixed should keep initial speed without growth: %+v", fixed.Speed)
	}

	normal := hard
	ApplyRunnerPreset(&normal, DifficultyNormal)
	if normal.Speed != ref.Speed {
		t.Errorf("normal should restore reference speed, got %+v", normal.Speed)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/x.db")
	if err != nil || got != "/tmp/x.db" {
		t.Errorf("ExpandHome on absolute path = %q, %v", got, err)
	}
}
