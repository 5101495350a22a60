// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config, got nil")
	}
	if cfg.Render.Visualizer != DefaultVisualizer {
		t.Errorf("default visualizer = %s, want %s", cfg.Render.Visualizer, DefaultVisualizer)
	}
	if cfg.Render.FrameRate != DefaultFrameRate {
		t.Errorf("default frame rate = %v, want %v", cfg.Render.FrameRate, DefaultFrameRate)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("nonexistent.yaml")
	if err == nil {
		t.Errorf("expected error for missing file, got nil")
	}
	if cfg != nil {
		t.Errorf("expected nil config on error, got %+v", cfg)
	}
}

func TestLoadConfig_UnmarshalError(t *testing.T) {
	path := writeTempConfig(t, ":\n:bad")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Error("expected unmarshal error, got nil or wrong error")
	}
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := writeTempConfig(t, `
render:
  visualizer: circular
  width: 256
  height: 128
  frame_rate: 24
  params:
    radius: 150
feature:
  source: band
  band: treble
  param: radius
  mode: absolute
  strength: 2.0
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Render.Visualizer != "circular" || cfg.Render.Width != 256 || cfg.Render.Height != 128 {
		t.Errorf("render settings not applied: %+v", cfg.Render)
	}
	if cfg.Render.Params["radius"] != 150 {
		t.Errorf("params override missing: %v", cfg.Render.Params)
	}
	if cfg.Feature.Source != "band" || cfg.Feature.Param != "radius" || cfg.Feature.Strength != 2.0 {
		t.Errorf("feature settings not applied: %+v", cfg.Feature)
	}
	// Untouched sections keep their defaults.
	if cfg.Render.OutputDir != DefaultOutputDir {
		t.Errorf("output dir = %s, want default %s", cfg.Render.OutputDir, DefaultOutputDir)
	}
}

func TestLoadConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad visualizer", "render:\n  visualizer: plasma\n"},
		{"zero width", "render:\n  width: 0\n"},
		{"frame rate too high", "render:\n  frame_rate: 1000\n"},
		{"bad feature source", "feature:\n  source: psychic\n"},
		{"bad feature mode", "feature:\n  mode: sideways\n"},
		{"bad demo signal", "input:\n  demo_signal: square\n"},
		{"udp without port", "transport:\n  udp_enabled: true\n  udp_target_address: localhost\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.yaml)
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("expected validation error for %q", tt.yaml)
			}
		})
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ENV_DEBUG", "true")
	t.Setenv("ENV_UDP_TARGET_ADDRESS", "10.0.0.1:7000")

	path := writeTempConfig(t, "debug: false\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if !cfg.Debug {
		t.Error("ENV_DEBUG should override the file value")
	}
	if cfg.Transport.UDPTargetAddress != "10.0.0.1:7000" {
		t.Errorf("udp target = %s, want env override", cfg.Transport.UDPTargetAddress)
	}
}
