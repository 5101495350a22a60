package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"specviz/internal/config"
	"specviz/pkg/build"
)

// ParseArgs builds the run configuration from an optional YAML file and
// command line flags. The file (if any) is loaded first so flags given
// explicitly override its values.
func ParseArgs() (*config.Config, error) {
	buildInfo := build.GetInfo()

	options, err := config.LoadConfig(configPathFromArgs(os.Args[1:]))
	if err != nil {
		return nil, err
	}

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name,
		Short:         "Render audio-reactive image sequences from WAV files",
		Version:       buildInfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			options.Command = "render"
			return nil
		},
	}

	// Display help message
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Render command (also the root default)
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the image sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			options.Command = "render"
			return nil
		},
	}
	rootCmd.AddCommand(renderCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available visualizers and their parameters",
		Run: func(cmd *cobra.Command, args []string) {
			options.Command = "list"
		},
	}
	rootCmd.AddCommand(listCmd)

	// Config file (consumed before flag parsing; declared so cobra
	// accepts and documents it).
	rootCmd.PersistentFlags().String("config", "",
		"Path to a YAML configuration file")

	// Input Configuration
	rootCmd.PersistentFlags().StringVarP(&options.Input.File, "input", "i", options.Input.File,
		"Path to the input WAV file. A demo signal is used when omitted.")
	rootCmd.PersistentFlags().StringVar(&options.Input.DemoSignal, "demo-signal", options.Input.DemoSignal,
		"Demo signal when no input file is given (sine, harmonics, silence)")
	rootCmd.PersistentFlags().Float64Var(&options.Input.DemoDuration, "demo-duration", options.Input.DemoDuration,
		"Demo signal length in seconds")

	// Render Configuration
	rootCmd.PersistentFlags().StringVarP(&options.Render.Visualizer, "visualizer", "z", options.Render.Visualizer,
		"Visualizer to render (bar, curve, circular, circledeform)")
	rootCmd.PersistentFlags().IntVarP(&options.Render.Width, "width", "W", options.Render.Width,
		"Output frame width in pixels")
	rootCmd.PersistentFlags().IntVarP(&options.Render.Height, "height", "H", options.Render.Height,
		"Output frame height in pixels")
	rootCmd.PersistentFlags().Float64VarP(&options.Render.FrameRate, "fps", "f", options.Render.FrameRate,
		"Output frames per second")
	rootCmd.PersistentFlags().StringVarP(&options.Render.OutputDir, "output", "o", options.Render.OutputDir,
		"Directory for the rendered PNG sequence")
	rootCmd.PersistentFlags().StringVar(&options.Render.Prefix, "prefix", options.Render.Prefix,
		"File name prefix for each frame")

	// Feature Modulation
	rootCmd.PersistentFlags().StringVar(&options.Feature.Source, "feature", options.Feature.Source,
		"Feature source driving parameter modulation (none, rms, band)")
	rootCmd.PersistentFlags().StringVar(&options.Feature.Band, "band", options.Feature.Band,
		"Frequency band for the band feature (sub, bass, lowmid, mid, highmid, treble)")
	rootCmd.PersistentFlags().StringVar(&options.Feature.Param, "param", options.Feature.Param,
		"Parameter the feature modulates. Use 'list' to see parameter names.")
	rootCmd.PersistentFlags().StringVar(&options.Feature.Mode, "mode", options.Feature.Mode,
		"Modulation mode (relative, absolute)")
	rootCmd.PersistentFlags().Float64Var(&options.Feature.Strength, "strength", options.Feature.Strength,
		"Modulation strength")

	// Debug Configuration
	rootCmd.PersistentFlags().BoolVarP(&options.Debug, "verbose", "v", options.Debug,
		"Show verbose output")

	// Execute the CLI
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return nil, err
	}

	// Flags may have changed values the file already validated.
	if err := options.Validate(); err != nil {
		return nil, err
	}

	return options, nil
}

// configPathFromArgs pre-scans the raw arguments for --config so the
// file can be loaded before cobra binds the remaining flags.
func configPathFromArgs(args []string) string {
	for i, a := range args {
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if len(a) > len("--config=") && a[:len("--config=")] == "--config=" {
			return a[len("--config="):]
		}
	}
	return ""
}
