package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/ironsheep/shape-recognizer/internal/detection"
	"github.com/ironsheep/shape-recognizer/internal/imaging"
	"github.com/ironsheep/shape-recognizer/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit statuses.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// config holds the parsed command line.
type config struct {
	opts          detection.Options
	json          bool
	annotate      string
	annotateScale int
	markerColor   string
	args          []string
}

func main() {
	// Configure logging to stderr (stdout is for results and MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func debugEnabled() bool {
	return os.Getenv("SHAPE_RECOGNIZER_LOG_LEVEL") == "debug"
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "shape-recognizer %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return exitOK
		case "--help", "-h", "help":
			printUsage(stdout)
			return exitOK
		case "serve":
			cfg, err := parseFlags(args[1:], stderr)
			if err != nil {
				return exitUsage
			}
			return serve(cfg)
		}
	}

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}
	if len(cfg.args) == 0 {
		fmt.Fprintln(stdout, "No input file")
		return exitUsage
	}
	return recognize(cfg, cfg.args[0], stdout)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "shape-recognizer - classify the black shape in a black and white image")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  shape-recognizer [options] <image>")
	fmt.Fprintln(w, "  shape-recognizer serve [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --json                  Print the result as JSON")
	fmt.Fprintln(w, "  --tolerance <px>        Tolerance for diagonal and side comparisons (default 0)")
	fmt.Fprintln(w, "  --legacy-angles         Measure triangle angles with absolute differences")
	fmt.Fprintln(w, "  --annotate <file.png>   Write a copy of the image with the border points marked")
	fmt.Fprintln(w, "  --annotate-scale <n>    Upscale factor for --annotate, 1 to 64 (default 8)")
	fmt.Fprintln(w, "  --marker-color <hex>    Marker color for --annotate (default #ff0000)")
	fmt.Fprintln(w, "  --version, -v           Print version information")
	fmt.Fprintln(w, "  --help, -h              Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  SHAPE_RECOGNIZER_LOG_LEVEL=debug    Enable debug logging")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "In serve mode the recognizer is exposed as MCP tools over stdin/stdout.")
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("shape-recognizer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	fs.BoolVar(&cfg.json, "json", false, "print the result as JSON")
	fs.Float64Var(&cfg.opts.Tolerance, "tolerance", 0, "tolerance in pixels for diagonal and side comparisons")
	fs.BoolVar(&cfg.opts.LegacyAngles, "legacy-angles", false, "measure triangle angles with absolute differences")
	fs.StringVar(&cfg.annotate, "annotate", "", "write an annotated PNG to this path")
	fs.IntVar(&cfg.annotateScale, "annotate-scale", imaging.DefaultAnnotateScale, "upscale factor for --annotate")
	fs.StringVar(&cfg.markerColor, "marker-color", "#ff0000", "marker color for --annotate")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.opts.Tolerance < 0 {
		fmt.Fprintf(stderr, "invalid --tolerance %v: must not be negative\n", cfg.opts.Tolerance)
		return nil, fmt.Errorf("negative tolerance")
	}
	if cfg.annotateScale <= 0 || cfg.annotateScale > imaging.MaxAnnotateScale {
		fmt.Fprintf(stderr, "invalid --annotate-scale %d: must be between 1 and %d\n", cfg.annotateScale, imaging.MaxAnnotateScale)
		return nil, fmt.Errorf("annotate scale out of range")
	}
	cfg.args = fs.Args()
	return cfg, nil
}

func serve(cfg *config) int {
	if debugEnabled() {
		log.Printf("Shape recognizer v%s (built %s, commit %s) serving on stdio", Version, BuildTime, GitCommit)
	}

	srv := server.New(cfg.opts, Version)
	if err := srv.Run(); err != nil {
		log.Printf("Server error: %v", err)
		return exitFailure
	}
	return exitOK
}

func recognize(cfg *config, path string, stdout io.Writer) int {
	debug := debugEnabled()

	cache := imaging.NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		if debug {
			log.Printf("Load %s: %v", path, err)
		}
		fmt.Fprintf(stdout, "Unable to open \"%s\"\n", path)
		return exitFailure
	}

	grid := imaging.NewPixelGrid(img)
	shape, border := detection.Recognize(grid, cfg.opts)
	if debug {
		log.Printf("Border points of %s: max_x=%v min_x=%v max_y=%v min_y=%v (%d black pixels)",
			path, border.MaxX, border.MinX, border.MaxY, border.MinY, border.Foreground)
	}

	if cfg.annotate != "" {
		if err := annotate(cfg, grid, border); err != nil {
			log.Printf("Annotation failed: %v", err)
			return exitFailure
		}
	}

	if cfg.json {
		out, err := json.MarshalIndent(&server.RecognizeResult{
			Recognized:   shape.Recognized(),
			Shape:        shape,
			BorderPoints: border,
			Width:        grid.Width(),
			Height:       grid.Height(),
		}, "", "  ")
		if err != nil {
			log.Printf("Failed to encode result: %v", err)
			return exitFailure
		}
		fmt.Fprintln(stdout, string(out))
	} else if shape.Recognized() {
		fmt.Fprintln(stdout, shape)
	} else {
		fmt.Fprintln(stdout, "Recognition error")
	}

	if !shape.Recognized() {
		return exitFailure
	}
	return exitOK
}

func annotate(cfg *config, grid *imaging.PixelGrid, border detection.BorderPoints) error {
	marker, err := imaging.ParseHexColor(cfg.markerColor)
	if err != nil {
		return err
	}

	opts := imaging.AnnotateOptions{
		Scale:       cfg.annotateScale,
		MarkerColor: marker,
		Labels:      true,
	}
	var marks []image.Point
	if border.Found() {
		marks = border.Marks()
		opts.Path = border.ProbedEdge()
	}

	if err := imaging.SaveAnnotation(cfg.annotate, imaging.Annotate(grid.Image(), marks, opts)); err != nil {
		return err
	}
	if debugEnabled() {
		log.Printf("Wrote annotation to %s", cfg.annotate)
	}
	return nil
}
