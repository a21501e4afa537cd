package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/ribbon/internal/anim"
	"github.com/olivier-w/ribbon/internal/canvas"
	"github.com/olivier-w/ribbon/internal/clock"
	"github.com/olivier-w/ribbon/internal/export"
	"github.com/olivier-w/ribbon/internal/ui"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logPath := cfg.logPath
	if logPath == "" && os.Getenv("RIBBON_DEBUG") != "" {
		logPath = "ribbon-debug.log"
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "ribbon")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("mode=%s degree=%d palette=%s seed=%d fps=%d colour=%s",
		cfg.kind, cfg.degree, anim.Palettes[cfg.palette].Name, seed, cfg.fps, canvas.ProfileName())

	e := anim.New(cfg.kind, cfg.degree, cfg.consts, rand.New(rand.NewSource(seed)))
	e.SetPalette(cfg.palette)

	if cfg.snapshot != "" {
		if err := renderSnapshot(e, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := ui.New(e, ui.Options{
		FPS:            cfg.fps,
		Warmup:         cfg.warmup,
		SnapshotWidth:  cfg.width,
		SnapshotHeight: cfg.height,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// headless drives the engine without drawing between frames.
type headless struct{ *anim.Engine }

func (headless) Draw(float64) {}

// renderSnapshot warms the engine up and writes a single frame to
// cfg.snapshot.
func renderSnapshot(e *anim.Engine, cfg config) error {
	d := clock.NewDriver(headless{e})
	d.Warmup(cfg.warmup)

	img := export.NewPNG(cfg.width, cfg.height)
	e.Draw(img, d.Now())
	if err := img.Save(cfg.snapshot); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	log.Printf("snapshot saved to %s", cfg.snapshot)
	return nil
}
