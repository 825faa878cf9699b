package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"spinwire/internal/config"
	"spinwire/internal/geom"
	"spinwire/internal/raster"
	"spinwire/internal/scene"
	"spinwire/internal/snapshot"
	"spinwire/internal/tui"
)

// EnvDebug enables debug logging to spinwire-debug.log.
const EnvDebug = "SPINWIRE_DEBUG"

var debug bool

func debugf(format string, args ...any) {
	if debug {
		log.Printf(format, args...)
	}
}

func main() {
	configFile := flag.String("config", "", "Path to YAML config (default: $"+config.EnvConfig+")")
	width := flag.Int("width", 0, "Canvas width in cells (default 80)")
	height := flag.Int("height", 0, "Canvas height in cells (default 24)")
	fov := flag.Float64("fov", 0, "Focal length scalar (default 40)")
	distance := flag.Float64("distance", 0, "Camera distance along z (default 5)")
	axis := flag.String("axis", "", "Rotation axis: x, y, z or xyz (default y)")
	step := flag.Float64("step", 0, "Rotation per frame in radians (default 0.05)")
	delay := flag.Duration("delay", 0, "Pause between frames (default 16ms)")
	frames := flag.Int("frames", 0, "Stop after N frames (default: run until interrupted)")
	shape := flag.String("shape", "", "Built-in shape ("+fmt.Sprint(geom.Names())+") or a .json/.yaml/.obj/.csv file")
	driver := flag.String("driver", "", "Output driver: plain, tui or auto (tui on a terminal) (default plain)")
	snap := flag.String("snapshot", "", "Write the last frame to a .png, .webp or .tga file")
	flag.Parse()

	if os.Getenv(EnvDebug) != "" {
		f, err := tea.LogToFile("spinwire-debug.log", "debug")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		debug = true
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Resolve(config.Flags{
		Width:    *width,
		Height:   *height,
		FOV:      *fov,
		Distance: *distance,
		Axis:     *axis,
		Step:     *step,
		Delay:    *delay,
		Frames:   *frames,
		Shape:    *shape,
		Driver:   *driver,
		Snapshot: *snap,
		Set:      set,
	})
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	debugf("config: %+v", cfg)

	shape, err := geom.Resolve(cfg.Shape)
	if err != nil {
		return err
	}
	if _, err := geom.Builtin(cfg.Shape); err != nil {
		// loaded meshes come in any size; fit them to the built-ins' radius
		shape = shape.Normalized(geom.Cube().Bounds().Max.Mag())
	}
	debugf("shape %s: %d vertices, %d edges", shape.Name, len(shape.Vertices), len(shape.Edges))

	s := scene.New(shape, scene.Params{
		FOV:         cfg.FOV,
		Distance:    cfg.Distance,
		Axis:        cfg.Axis,
		Step:        cfg.Step,
		EdgeGlyph:   cfg.EdgeGlyph(),
		VertexGlyph: cfg.VertexGlyph(),
	})

	drv := cfg.Driver
	if drv == "auto" {
		drv = "plain"
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			drv = "tui"
		}
	}
	debugf("driver: %s", drv)

	var last *raster.ScreenBuffer
	switch drv {
	case "tui":
		m := tui.New(s, cfg.Width, cfg.Height, cfg.Delay, cfg.Frames)
		final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}
		fm := final.(tui.Model)
		debugf("tui stopped after %d frames", fm.Rendered())
		last = fm.Buffer()
	default:
		last, err = runPlain(s, cfg, os.Stdout)
		if err != nil {
			return err
		}
	}

	if cfg.Snapshot != "" {
		if err := snapshot.Save(last, cfg.Snapshot); err != nil {
			return err
		}
		debugf("snapshot written to %s", cfg.Snapshot)
	}
	return nil
}

func runPlain(s *scene.Scene, cfg config.Config, w io.Writer) (*raster.ScreenBuffer, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := scene.NewRunner(s, cfg.Width, cfg.Height, cfg.Delay, cfg.Frames)
	err := r.Run(ctx, w)
	debugf("plain runner stopped after %d frames", r.Rendered())
	return r.Buffer(), err
}
