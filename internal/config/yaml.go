// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file specified by path. If
// path is empty, it searches default locations ("specviz.yaml"). If no
// file is found, it uses built-in defaults. After loading, it applies
// environment variable overrides and validates the final configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		candidates := []string{
			"specviz.yaml",
			"config.yaml",
		}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			cfg.applyEnvOverrides()
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid default configuration: %w", err)
			}
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides AFTER loading from file.
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run
// with.
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Width > MaxDimension {
		return fmt.Errorf("render.width %d out of range (1..%d)", c.Render.Width, MaxDimension)
	}
	if c.Render.Height <= 0 || c.Render.Height > MaxDimension {
		return fmt.Errorf("render.height %d out of range (1..%d)", c.Render.Height, MaxDimension)
	}
	if c.Render.FrameRate < MinFrameRate || c.Render.FrameRate > MaxFrameRate {
		return fmt.Errorf("render.frame_rate %v out of range (%v..%v)", c.Render.FrameRate, MinFrameRate, MaxFrameRate)
	}
	switch c.Render.Visualizer {
	case "bar", "curve", "circular", "circledeform":
	default:
		return fmt.Errorf("render.visualizer '%s' is not one of bar, curve, circular, circledeform", c.Render.Visualizer)
	}
	switch strings.ToLower(c.Feature.Source) {
	case "", "none", "rms", "band":
	default:
		return fmt.Errorf("feature.source '%s' is not one of none, rms, band", c.Feature.Source)
	}
	switch strings.ToLower(c.Feature.Mode) {
	case "", "relative", "absolute":
	default:
		return fmt.Errorf("feature.mode '%s' is not one of relative, absolute", c.Feature.Mode)
	}
	if c.Input.File == "" {
		switch strings.ToLower(c.Input.DemoSignal) {
		case "sine", "harmonics", "silence":
		default:
			return fmt.Errorf("input.demo_signal '%s' is not one of sine, harmonics, silence", c.Input.DemoSignal)
		}
		if c.Input.DemoDuration <= 0 {
			return fmt.Errorf("input.demo_duration must be positive, got %v", c.Input.DemoDuration)
		}
	}
	if c.Transport.WebSocketEnabled && c.Transport.WebSocketAddress == "" {
		return fmt.Errorf("transport.websocket_address must be set when the WebSocket server is enabled")
	}
	if c.Transport.UDPEnabled {
		if c.Transport.UDPTargetAddress == "" {
			return fmt.Errorf("transport.udp_target_address must be set when UDP is enabled")
		}
		if !strings.Contains(c.Transport.UDPTargetAddress, ":") {
			return fmt.Errorf("transport.udp_target_address '%s' appears invalid (missing port?)", c.Transport.UDPTargetAddress)
		}
	}
	return nil
}

// applyEnvOverrides lets the environment win over file values for the
// handful of settings that change between runs of the same config.
func (cfg *Config) applyEnvOverrides() {
	// ENV_DEBUG
	if val, ok := os.LookupEnv("ENV_DEBUG"); ok {
		if bVal, err := strconv.ParseBool(val); err == nil {
			cfg.Debug = bVal
		}
	}
	// ENV_LOG_LEVEL
	if val, ok := os.LookupEnv("ENV_LOG_LEVEL"); ok {
		cfg.LogLevel = val
	}
	// ENV_OUTPUT_DIR
	if val, ok := os.LookupEnv("ENV_OUTPUT_DIR"); ok {
		cfg.Render.OutputDir = val
	}
	// ENV_UDP_ENABLED
	if val, ok := os.LookupEnv("ENV_UDP_ENABLED"); ok {
		if bVal, err := strconv.ParseBool(val); err == nil {
			cfg.Transport.UDPEnabled = bVal
		}
	}
	// ENV_UDP_TARGET_ADDRESS
	if val, ok := os.LookupEnv("ENV_UDP_TARGET_ADDRESS"); ok {
		cfg.Transport.UDPTargetAddress = val
	}
}
