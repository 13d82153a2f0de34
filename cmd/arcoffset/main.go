// Command arcoffset offsets a built-in polyline fixture and writes the
// reconciled cycles as SVG and optionally PNG.
//
// Defaults can be set through ARCOFFSET_* environment variables
// (ARCOFFSET_OFFSET, ARCOFFSET_SVG, ...); flags take precedence.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/gogpu/arcline"
	"github.com/gogpu/arcline/render"
)

type config struct {
	Offset  float64 `default:"16"`
	Fixture string  `default:"pline01"`
	Inward  bool    `default:"false"`
	SVG     string  `default:"offset.svg"`
	PNG     string  `default:""`
	Width   int     `default:"800"`
	Height  int     `default:"800"`
	Scale   float64 `default:"2"`
	Verbose bool    `default:"false"`
}

func main() {
	var cfg config
	if err := envconfig.Process("arcoffset", &cfg); err != nil {
		log.Fatalf("Bad environment: %v", err)
	}

	flag.Float64Var(&cfg.Offset, "offset", cfg.Offset, "offset distance")
	flag.StringVar(&cfg.Fixture, "fixture", cfg.Fixture, "input fixture: pline01 or pline02")
	flag.BoolVar(&cfg.Inward, "inward", cfg.Inward, "offset inward (reverses the polyline)")
	flag.StringVar(&cfg.SVG, "svg", cfg.SVG, "SVG output file")
	flag.StringVar(&cfg.PNG, "png", cfg.PNG, "PNG output file (empty disables)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "PNG width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "PNG height")
	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "PNG world-to-pixel scale")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable debug logging")
	flag.Parse()

	if cfg.Verbose {
		arcline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var pline arcline.Polyline
	switch cfg.Fixture {
	case "pline01":
		pline = arcline.Pline01()
	case "pline02":
		pline = arcline.Pline02()
	default:
		log.Fatalf("Unknown fixture %q", cfg.Fixture)
	}
	if cfg.Inward {
		pline = pline.Reverse()
	}

	cycles := arcline.OffsetPolyline(pline, cfg.Offset)
	log.Printf("Offset by %v: %d cycles", cfg.Offset, len(cycles))
	for i, cycle := range cycles {
		log.Printf("  cycle %d: %d edges", i, len(cycle))
	}

	if cfg.SVG != "" {
		svg := arcline.NewSVG(600, 600)
		svg.SetStrokeWidth(0.5)
		svg.Polyline(pline, "grey")
		svg.Cycles(cycles)
		if err := svg.WriteFile(cfg.SVG); err != nil {
			log.Fatalf("Failed to write SVG: %v", err)
		}
		log.Printf("SVG saved to %s", cfg.SVG)
	}
	if cfg.PNG != "" {
		if err := render.WritePNG(cfg.PNG, cycles, cfg.Width, cfg.Height, cfg.Scale); err != nil {
			log.Fatalf("Failed to write PNG: %v", err)
		}
		log.Printf("PNG saved to %s (%dx%d)", cfg.PNG, cfg.Width, cfg.Height)
	}
}
