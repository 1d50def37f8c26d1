package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// isolate points the user and local config locations at empty directories.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded defaults %+v differ from %+v", cfg, DefaultPongConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadPongFallsBackToDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() error = %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("cfg = %+v, expected defaults", cfg)
	}
}

func TestLoadPongSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(work, LocalPath), "physics:\n  ai_speed: 111\n")

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() error = %v", err)
	}
	if cfg.Physics.AISpeed != 111 {
		t.Errorf("local config ignored: ai_speed = %v", cfg.Physics.AISpeed)
	}
	if cfg.Physics.BallSpeed != 550 {
		t.Errorf("partial file should keep defaults, ball_speed = %v", cfg.Physics.BallSpeed)
	}

	// The user config wins over the local one
	writeFile(t, filepath.Join(home, ".pong", "configs", "pong.yaml"), "physics:\n  ai_speed: 222\n")
	cfg, err = LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() error = %v", err)
	}
	if cfg.Physics.AISpeed != 222 {
		t.Errorf("user config ignored: ai_speed = %v", cfg.Physics.AISpeed)
	}

	// An explicit path wins over both
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "input:\n  hold_ms: 90\n")
	cfg, err = LoadPong(custom)
	if err != nil {
		t.Fatalf("LoadPong(custom) error = %v", err)
	}
	if cfg.Input.HoldMillis != 90 || cfg.Input.RepeatDelayMillis != 600 || cfg.Physics.AISpeed != 250 {
		t.Errorf("custom config = %+v", cfg)
	}
}

func TestLoadPongSkipsBrokenImplicitFile(t *testing.T) {
	_, work := isolate(t)
	writeFile(t, filepath.Join(work, LocalPath), "physics: [not a map")

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() error = %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("cfg = %+v, expected defaults", cfg)
	}
}

func TestLoadPongCustomErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string // empty means the file is not created
		invalid bool
	}{
		{"missing file", "", false},
		{"malformed yaml", "physics: [1, 2", false},
		{"negative speed", "physics:\n  ball_speed: -1\n", true},
		{"zero hold window", "input:\n  hold_ms: 0\n", true},
		{"zero repeat delay", "input:\n  repeat_delay_ms: 0\n", true},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if tc.content != "" {
				writeFile(t, path, tc.content)
			}
			_, err := LoadPong(path)
			if err == nil {
				t.Fatalf("case %d: expected an error", i)
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseDifficulty(%q) error should wrap ErrInvalidConfig", tc.in)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPongPresetScalesOnlyAI(t *testing.T) {
	for _, preset := range Presets {
		cfg := DefaultPongConfig()
		ApplyPongPreset(&cfg, preset)

		if want := 250 * AISpeedScale(preset); cfg.Physics.AISpeed != want {
			t.Errorf("%s: ai_speed = %v, expected %v", preset, cfg.Physics.AISpeed, want)
		}
		if cfg.Physics.BallSpeed != 550 || cfg.Physics.PaddleSpeed != 500 {
			t.Errorf("%s: preset changed ball or paddle speed: %+v", preset, cfg.Physics)
		}
	}

	if AISpeedScale(DifficultyEasy) >= AISpeedScale(DifficultyHard) {
		t.Error("easy should be slower than hard")
	}
}
