package config

// Core configuration constants that define the boundaries and defaults
// for the rendering pipeline.
const (
	// Default values for a render run
	DefaultVisualizer = "bar"   // Bar spectrum
	DefaultWidth      = 512     // Output frame width (px)
	DefaultHeight     = 512     // Output frame height (px)
	DefaultFrameRate  = 30.0    // Output frames per second
	DefaultOutputDir  = "./out" // Frame sequence destination
	DefaultPrefix     = "frame" // Frame file name prefix
	DefaultLogLevel   = "info"  // Quiet operation

	// Feature modulation defaults
	DefaultFeatureSource = "none"     // No modulation
	DefaultFeatureBand   = "bass"     // Band used by the band source
	DefaultFeatureParam  = ""         // No target parameter
	DefaultFeatureMode   = "relative" // 0.5 is neutral
	DefaultStrength      = 1.0        // Unit modulation swing

	// Demo input defaults, used when no WAV file is given
	DefaultDemoSignal   = "harmonics" // Built-in test signal
	DefaultDemoDuration = 4.0         // Seconds of generated audio

	// Processing limits
	MinFrameRate  = 1.0    // Below this a frame spans over a second
	MaxFrameRate  = 240.0  // High-speed capture ceiling
	MaxDimension  = 8192   // Largest width/height we rasterize
	MaxSampleRate = 192000 // Maximum supported sample rate (Hz)
)

// Config holds all runtime options for a render run. It is constructed
// from a YAML file and/or command line flags.
type Config struct {
	Debug    bool   `yaml:"debug"`     // Enable debug mode (verbose logging).
	LogLevel string `yaml:"log_level"` // Logging level ("debug", "info", "warn", "error").
	Command  string `yaml:"-"`         // One-off command selected on the CLI ("render", "list").

	Input     InputConfig     `yaml:"input"`     // Audio source settings.
	Render    RenderConfig    `yaml:"render"`    // Visualizer and output settings.
	Feature   FeatureConfig   `yaml:"feature"`   // Parameter modulation settings.
	Transport TransportConfig `yaml:"transport"` // Progress reporting settings.
}

// InputConfig selects the audio source: a WAV file when File is set,
// otherwise a generated demo signal.
type InputConfig struct {
	File         string  `yaml:"file"`          // Path to a WAV file.
	DemoSignal   string  `yaml:"demo_signal"`   // "sine", "harmonics" or "silence".
	DemoDuration float64 `yaml:"demo_duration"` // Length of the generated signal in seconds.
}

// RenderConfig holds the visual output settings.
type RenderConfig struct {
	Visualizer string             `yaml:"visualizer"` // "bar", "curve", "circular" or "circledeform".
	Width      int                `yaml:"width"`      // Frame width in pixels.
	Height     int                `yaml:"height"`     // Frame height in pixels.
	FrameRate  float64            `yaml:"frame_rate"` // Frames per second of the output sequence.
	OutputDir  string             `yaml:"output_dir"` // Directory for the PNG sequence.
	Prefix     string             `yaml:"prefix"`     // File name prefix for each frame.
	Params     map[string]float64 `yaml:"params"`     // Per-visualizer parameter overrides.
}

// FeatureConfig drives the per-frame modulation of one parameter.
type FeatureConfig struct {
	Source   string  `yaml:"source"`   // "none", "rms" or "band".
	Band     string  `yaml:"band"`     // Band name when source is "band".
	Param    string  `yaml:"param"`    // Target parameter name.
	Mode     string  `yaml:"mode"`     // "relative" or "absolute".
	Strength float64 `yaml:"strength"` // Modulation strength.
}

// TransportConfig holds settings for streaming per-frame progress.
type TransportConfig struct {
	WebSocketEnabled bool   `yaml:"websocket_enabled"`  // Serve progress over a WebSocket endpoint.
	WebSocketAddress string `yaml:"websocket_address"`  // Listen address, e.g. "127.0.0.1:8080".
	UDPEnabled       bool   `yaml:"udp_enabled"`        // Send progress packets over UDP.
	UDPTargetAddress string `yaml:"udp_target_address"` // Target address, e.g. "127.0.0.1:9090".
}

// NewConfig creates a Config populated with default values, the base
// before applying a file or command line flags.
func NewConfig() *Config {
	return &Config{
		Debug:    false,
		LogLevel: DefaultLogLevel,
		Input: InputConfig{
			DemoSignal:   DefaultDemoSignal,
			DemoDuration: DefaultDemoDuration,
		},
		Render: RenderConfig{
			Visualizer: DefaultVisualizer,
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			FrameRate:  DefaultFrameRate,
			OutputDir:  DefaultOutputDir,
			Prefix:     DefaultPrefix,
		},
		Feature: FeatureConfig{
			Source:   DefaultFeatureSource,
			Band:     DefaultFeatureBand,
			Param:    DefaultFeatureParam,
			Mode:     DefaultFeatureMode,
			Strength: DefaultStrength,
		},
		Transport: TransportConfig{
			WebSocketEnabled: false,
			WebSocketAddress: "127.0.0.1:8080",
			UDPEnabled:       false,
			UDPTargetAddress: "127.0.0.1:9090",
		},
	}
}
