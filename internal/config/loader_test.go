package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Embedded YAML %+v differs from hardcoded defaults %+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultRuntimeMatchesCore(t *testing.T) {
	got := DefaultSnakeConfig().Runtime(0)
	if got != core.DefaultConfig() {
		t.Errorf("Runtime() = %+v, expected %+v", got, core.DefaultConfig())
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := "board:\n  width: 60\nspeed:\n  base_delay_ms: 150\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Width != 60 {
		t.Errorf("Width = %d, expected 60", cfg.Board.Width)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("Height = %d, expected default 20", cfg.Board.Height)
	}

	rt := cfg.Runtime(99)
	if rt.BaseDelay != 150*time.Millisecond {
		t.Errorf("BaseDelay = %v, expected 150ms", rt.BaseDelay)
	}
	if rt.Seed != 99 {
		t.Errorf("Seed = %d, expected 99", rt.Seed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("Load() error = %v, expected read failure", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "board: [1, 2"},
		{"tiny board", "board:\n  width: 4\n  height: 4\n"},
		{"zero delay", "speed:\n  base_delay_ms: 0\n"},
		{"zero min delay", "speed:\n  min_delay_ms: 0\n"},
		{"negative step", "speed:\n  step_ms: -1\n"},
		{"negative attempts", "food:\n  attempts: -5\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "snake.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}
