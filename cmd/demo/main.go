// Copyright © 2024 Galvanized Logic Inc.

// Command demo builds a small falling-disk sandbox, steps it for a
// fixed number of frames, and writes the final frame to a PNG file.
// It is a headless stand-in for the interactive windowed loop a real
// sandbox would run - pygame's display.flip() per frame becomes one
// png.Encode call at the end here.
package main

import (
	"flag"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/gazed/vu/math/vec2"
	"github.com/gazed/vu/physics"
	"github.com/gazed/vu/render"
)

const (
	windowWidth  = 960
	windowHeight = 540
	frameRate    = 100
)

func main() {
	out := flag.String("out", "demo.png", "path to write the final frame")
	frames := flag.Int("frames", 300, "number of simulation steps to run before rendering")
	configPath := flag.String("config", "", "optional YAML config path (see physics.Config)")
	flag.Parse()

	cfg := physics.DefaultConfig()
	if *configPath != "" {
		loaded, err := physics.LoadConfig(*configPath)
		if err != nil {
			slog.Error("loading config", "path", *configPath, "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	solver := physics.NewSolverFromConfig(cfg)
	buildScene(solver)

	dt := 1.0 / frameRate
	for i := 0; i < *frames; i++ {
		if err := solver.Step(dt); err != nil {
			slog.Error("stepping solver", "frame", i, "err", err)
			os.Exit(1)
		}
	}

	frame := render.NewFrame(windowWidth, windowHeight)
	frame.Clear(color.Black)
	drawScene(frame, solver)

	f, err := os.Create(*out)
	if err != nil {
		slog.Error("creating output file", "path", *out, "err", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, frame.Image()); err != nil {
		slog.Error("encoding frame", "err", err)
		os.Exit(1)
	}
	slog.Info("wrote frame", "path", *out, "frames_simulated", *frames)
}

// buildScene mirrors the falling-ball-onto-anchored-floor sandbox: a
// free disk above three anchored "floor" disks and an anchored wall,
// plus a slowly spinning anchored octagon that never falls.
func buildScene(s *physics.Solver) {
	cx, cy := float64(windowWidth)/2, float64(windowHeight)/2

	ball := physics.NewDisk(vec2.V{X: cx, Y: cy - 150}, 30, false)
	s.AddBody(ball)

	s.AddBody(physics.NewDisk(vec2.V{X: cx, Y: cy + 100}, 40, true))
	s.AddBody(physics.NewDisk(vec2.V{X: cx - 200, Y: cy + 100}, 40, true))
	s.AddBody(physics.NewDisk(vec2.V{X: cx + 200, Y: cy + 100}, 40, true))
	s.AddBody(physics.NewSegment(vec2.V{X: cx - 220, Y: cy - 100}, vec2.V{X: cx - 220, Y: cy + 130}, true))

	octagon := physics.NewRegularPolygon(vec2.V{X: cx + 300, Y: cy - 150}, 60, 8, true, 0.01)
	s.AddBody(octagon)
}

// drawScene renders every body's current shape onto frame.
func drawScene(frame *render.Frame, s *physics.Solver) {
	c := color.RGBA{R: 220, G: 220, B: 220, A: 255}
	for _, b := range s.IterBodies() {
		switch b.Kind() {
		case physics.Disk:
			frame.DrawDisk(b.Position(), b.DiskRadius(), c)
		case physics.Segment:
			pts := b.Points()
			frame.DrawSegment(pts[0], pts[1], 4, c)
		case physics.Polygon:
			frame.DrawPolygon(b.Points(), c)
		}
	}
}
