package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// scenesDir is scanned for scene files referenced as "file:<name>"
const scenesDir = "scenes"

// options holds the parsed command line
type options struct {
	scene      string
	configPath string
	output     string
	samples    int
	height     float64
	seed       int64
	workers    int
	list       bool
	help       bool

	// set records which flags were given explicitly
	set map[string]bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	opts, fs, err := parseFlags(args, out)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.help {
		printHelp(fs, out)
		return nil
	}
	if opts.list {
		return printScenes(out)
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger := renderer.NewLeveledLogger(cfg.Logging.Level, out)

	selectedScene, err := createScene(opts.scene, scenesDir)
	if err != nil {
		return err
	}
	logger.Infof("Using scene %q (%d primitives, %d lights)", opts.scene, selectedScene.GetPrimitiveCount(), len(selectedScene.Lights))
	if len(selectedScene.Lights) == 0 {
		logger.Warnf("Scene %q has no lights, only ambient terms will show", opts.scene)
	}

	raytracer := renderer.NewRaytracer(selectedScene, renderer.SamplingConfig{
		SamplesPerPixel: cfg.Render.Samples,
		Height:          cfg.Render.Height,
		TileSize:        cfg.Render.TileSize,
		NumWorkers:      cfg.Render.Workers,
	}, logger)

	img, stats, err := raytracer.RenderImage(ctx, core.NewSeededSampler(cfg.Render.Seed))
	if err != nil {
		return err
	}

	if err := loaders.SaveImage(cfg.Output.Path, img); err != nil {
		return err
	}

	logger.Infof("Render saved as %s (%.1f samples per pixel, average luminance %.3f)",
		cfg.Output.Path, stats.AverageSamples, renderer.CalculateAverageLuminance(img))
	return nil
}

// parseFlags parses args into options
func parseFlags(args []string, out io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.scene, "scene", "default", "Built-in scene ID, file:<name> from the scenes directory, or a scene file path")
	fs.StringVar(&opts.configPath, "config", "", "YAML render configuration file")
	fs.StringVar(&opts.output, "output", "", "Output image path (.png, .jpg or .bmp)")
	fs.IntVar(&opts.samples, "samples", 0, "Anti-aliasing samples per pixel")
	fs.Float64Var(&opts.height, "height", 0, "Screen height in pixels (0 uses the camera's view plane height)")
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 uses all CPUs)")
	fs.BoolVar(&opts.list, "list", false, "List available scenes")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if fs.NArg() > 0 {
		return nil, fs, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, fs, nil
}

// resolveConfig loads the config file when given, then applies explicit flags on top
func resolveConfig(opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	if opts.set["output"] {
		cfg.Output.Path = opts.output
	}
	if opts.set["samples"] {
		cfg.Render.Samples = opts.samples
	}
	if opts.set["height"] {
		cfg.Render.Height = opts.height
	}
	if opts.set["seed"] {
		cfg.Render.Seed = opts.seed
	}
	if opts.set["workers"] {
		cfg.Render.Workers = opts.workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// createScene resolves a -scene argument: a built-in ID, a "file:<name>" ID
// from dir, or a path to a scene file
func createScene(sceneArg, dir string) (*scene.Scene, error) {
	if sceneArg == "" {
		return nil, fmt.Errorf("no scene given")
	}

	if s, ok := scene.NewBuiltinScene(sceneArg); ok {
		return s, nil
	}

	if strings.HasPrefix(sceneArg, "file:") {
		files, err := scene.ListSceneFiles(dir)
		if err != nil {
			return nil, err
		}
		for _, info := range files {
			if info.ID == sceneArg {
				return loaders.LoadScene(info.FilePath)
			}
		}
		return nil, fmt.Errorf("scene %q not found in %s", sceneArg, dir)
	}

	if _, err := os.Stat(sceneArg); err == nil {
		return loaders.LoadScene(sceneArg)
	}
	return nil, fmt.Errorf("unknown scene %q (use -list to see available scenes)", sceneArg)
}

func printHelp(fs *flag.FlagSet, out io.Writer) {
	fmt.Fprintln(out, "Phong Raytracer")
	fmt.Fprintln(out, "Usage: raytracer [options]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(out)
	if err := printScenes(out); err != nil {
		fmt.Fprintf(out, "(could not list scene files: %v)\n", err)
	}
}

func printScenes(out io.Writer) error {
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Available scenes:")
	for _, info := range scenes {
		if info.Description != "" {
			fmt.Fprintf(out, "  %-16s %s - %s\n", info.ID, info.DisplayName, info.Description)
		} else {
			fmt.Fprintf(out, "  %-16s %s\n", info.ID, info.DisplayName)
		}
	}
	return nil
}
