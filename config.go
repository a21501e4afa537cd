package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/olivier-w/ribbon/internal/anim"
	"github.com/olivier-w/ribbon/internal/ui"
)

type config struct {
	kind     anim.Kind
	degree   int
	consts   anim.Constants
	palette  int
	seed     int64
	fps      int
	warmup   float64
	snapshot string
	width    int
	height   int
	logPath  string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	d := anim.DefaultConstants()
	fs := flag.NewFlagSet("ribbon", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		mode     = fs.String("mode", anim.Sliding.String(), "animation mode: sliding or twisting")
		degree   = fs.Int("degree", 8, fmt.Sprintf("curve degree (%d-%d)", anim.MinDegree, anim.MaxDegree))
		curves   = fs.Int("curves", d.MaxCurves, "history length (sliding) or slot count (twisting)")
		interval = fs.Float64("interval", d.SpawnInterval, "ms between history snapshots")
		speed    = fs.Float64("speed", d.Speed*1000, "control point speed in curve units per second")
		segments = fs.Int("segments", d.Segments, "polyline segments per curve")
		pivots   = fs.Int("pivots", d.Pivots, "independently animated curves in twisting mode")
		palette  = fs.String("palette", anim.Palettes[0].Name, "palette: "+paletteNames())
		seed     = fs.Int64("seed", 0, "random seed; 0 picks one from the clock")
		fps      = fs.Int("fps", ui.DefaultFPS, "frames per second")
		warmup   = fs.Float64("warmup", 3000, "simulated ms before the first frame")
		snapshot = fs.String("snapshot", "", "render one frame to this PNG file and exit")
		width    = fs.Int("width", ui.DefaultSnapshotWidth, "snapshot width in pixels")
		height   = fs.Int("height", ui.DefaultSnapshotHeight, "snapshot height in pixels")
		logPath  = fs.String("log", "", "write debug log to this file")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	kind, err := anim.ParseKind(*mode)
	if err != nil {
		return config{}, err
	}
	pal, ok := anim.PaletteIndex(*palette)
	if !ok {
		return config{}, fmt.Errorf("unknown palette %q (want one of %s)", *palette, paletteNames())
	}
	if *fps <= 0 {
		return config{}, fmt.Errorf("fps must be positive, got %d", *fps)
	}
	if *width <= 0 || *height <= 0 {
		return config{}, fmt.Errorf("snapshot size must be positive, got %dx%d", *width, *height)
	}

	c := d
	c.MaxCurves = *curves
	c.SpawnInterval = *interval
	c.Speed = *speed / 1000
	c.Segments = *segments
	c.Pivots = *pivots

	return config{
		kind:     kind,
		degree:   *degree,
		consts:   c,
		palette:  pal,
		seed:     *seed,
		fps:      *fps,
		warmup:   max(*warmup, 0),
		snapshot: *snapshot,
		width:    *width,
		height:   *height,
		logPath:  *logPath,
	}, nil
}

func paletteNames() string {
	names := make([]string, len(anim.Palettes))
	for i, p := range anim.Palettes {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
