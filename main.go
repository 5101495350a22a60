package main

import (
	"fmt"
	"strings"

	"specviz/cmd"
	"specviz/internal/audio"
	"specviz/internal/config"
	"specviz/internal/feature"
	applog "specviz/internal/log"
	"specviz/internal/render"
	"specviz/internal/transport"
	"specviz/internal/transport/udp"
	"specviz/internal/viz"
	"specviz/pkg/build"
	"specviz/pkg/sig"
)

// main is the entry point for the renderer. The program flow has three
// phases:
//
// 1. Startup:
//   - Initialize build information
//   - Parse command line arguments and configuration file
//   - Execute one-off commands if requested
//
// 2. Render:
//   - Load the audio track (WAV file or demo signal)
//   - Precompute the feature envelope when modulation is configured
//   - Run the sequence driver, streaming per-frame progress
//
// 3. Output:
//   - Write the PNG sequence and close the transports
func main() {
	build.Initialize()

	cfg, err := cmd.ParseArgs()
	if err != nil {
		applog.Fatalf("%v", err)
	}

	if cfg.Debug {
		applog.SetLevel(applog.LevelDebug)
	} else if level, ok := applog.ParseLevel(cfg.LogLevel); ok {
		applog.SetLevel(level)
	}

	switch cfg.Command {
	case "list":
		printVisualizers()
	case "render":
		if err := run(cfg); err != nil {
			applog.Fatalf("%v", err)
		}
	}
}

// run executes a full render according to cfg.
func run(cfg *config.Config) error {
	track, err := loadTrack(cfg)
	if err != nil {
		return err
	}
	applog.Infof("Input: %.2fs of audio at %d Hz", track.Duration(), track.SampleRate)

	vis, err := viz.New(cfg.Render.Visualizer, cfg.Render.Params)
	if err != nil {
		return err
	}

	opts := viz.Options{
		Width:     cfg.Render.Width,
		Height:    cfg.Render.Height,
		FrameRate: cfg.Render.FrameRate,
	}

	if err := configureFeature(cfg, track, &opts); err != nil {
		return err
	}

	progress, err := buildTransports(cfg)
	if err != nil {
		return err
	}
	defer progress.Close()
	opts.Progress = progress

	driver, err := viz.NewDriver(track, vis, opts)
	if err != nil {
		return err
	}
	applog.Infof("Render: %s, %dx%d at %.1f fps, %d frames",
		vis.Name(), opts.Width, opts.Height, opts.FrameRate, driver.NumFrames())

	frames, err := driver.Render()
	if err != nil {
		return err
	}

	paths, err := render.WriteSequence(cfg.Render.OutputDir, cfg.Render.Prefix, frames)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d frames to %s\n", len(paths), cfg.Render.OutputDir)
	return nil
}

// loadTrack reads the configured WAV file, or generates a demo signal
// when no file is given.
func loadTrack(cfg *config.Config) (*audio.Track, error) {
	if cfg.Input.File != "" {
		return audio.LoadWAV(cfg.Input.File)
	}

	sampleRate := 44100
	n := int(cfg.Input.DemoDuration * float64(sampleRate))
	var samples []float64
	switch strings.ToLower(cfg.Input.DemoSignal) {
	case "sine":
		samples = sig.Sine(n, float64(sampleRate), 440)
	case "harmonics":
		samples = sig.Harmonics(n, float64(sampleRate))
	case "silence":
		samples = sig.Silence(n)
	default:
		return nil, fmt.Errorf("unknown demo signal '%s'", cfg.Input.DemoSignal)
	}
	applog.Infof("Input: using %.1fs '%s' demo signal", cfg.Input.DemoDuration, cfg.Input.DemoSignal)
	return &audio.Track{Samples: samples, SampleRate: sampleRate}, nil
}

// configureFeature precomputes the feature envelope and fills the
// modulation fields of opts.
func configureFeature(cfg *config.Config, track *audio.Track, opts *viz.Options) error {
	source := strings.ToLower(cfg.Feature.Source)
	if source == "" || source == "none" {
		return nil
	}
	if cfg.Feature.Param == "" || cfg.Feature.Param == "none" {
		applog.Warnf("Feature: source '%s' configured but no target parameter; modulation disabled", source)
		return nil
	}

	numFrames := track.NumFrames(cfg.Render.FrameRate)
	frameDur := track.FrameDuration(cfg.Render.FrameRate, numFrames)

	var src feature.Source
	switch source {
	case "rms":
		src = feature.NewRMSEnvelope(track, frameDur, numFrames)
	case "band":
		band, err := feature.BandByName(cfg.Feature.Band)
		if err != nil {
			return err
		}
		env, err := feature.NewBandEnergyEnvelope(track, frameDur, numFrames, band)
		if err != nil {
			return err
		}
		src = env
	default:
		return fmt.Errorf("unknown feature source '%s'", source)
	}

	mode, err := viz.ParseMode(cfg.Feature.Mode)
	if err != nil {
		return err
	}

	opts.Feature = src
	opts.FeatureParam = cfg.Feature.Param
	opts.FeatureMode = mode
	opts.Strength = cfg.Feature.Strength
	return nil
}

// buildTransports assembles the progress sinks: the log always, plus
// WebSocket and UDP when enabled.
func buildTransports(cfg *config.Config) (transport.Transport, error) {
	sinks := []transport.Transport{transport.NewLoggingTransport()}

	if cfg.Transport.WebSocketEnabled {
		sinks = append(sinks, transport.NewWebSocketTransport(cfg.Transport.WebSocketAddress))
	}
	if cfg.Transport.UDPEnabled {
		t, err := udp.NewTransport(cfg.Transport.UDPTargetAddress)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, t)
	}

	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return &transport.Multi{Transports: sinks}, nil
}

// printVisualizers writes the visualizer registry to stdout.
func printVisualizers() {
	for _, d := range viz.Registry() {
		fmt.Printf("%s\n", d.Name)
		for _, p := range d.Params {
			if p.IsBool {
				fmt.Printf("  %-16s bool (default false)\n", p.Name)
				continue
			}
			fmt.Printf("  %-16s %g..%g (default %g)\n", p.Name, p.Min, p.Max, p.Default)
		}
	}
}
