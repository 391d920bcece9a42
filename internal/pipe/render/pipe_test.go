package render

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/dmgcanvas/dmgcanvas/pkg/backend"
	"github.com/dmgcanvas/dmgcanvas/pkg/config"
	dmgCtx "github.com/dmgcanvas/dmgcanvas/pkg/context"
	"github.com/dmgcanvas/dmgcanvas/pkg/raster"
	"github.com/dmgcanvas/dmgcanvas/pkg/svg"
)

func renderConfig(t *testing.T, width, height int) *config.Config {
	t.Helper()
	return &config.Config{
		Canvas: config.CanvasConfig{Width: width, Height: height},
		Text: config.TextConfig{
			Title:       "Swipey",
			Instruction: "Drag to Applications",
		},
		Palette: config.PaletteConfig{
			Background: "#fafafa",
			Text:       "#0a0a0a",
			Accent:     "#d4d4d4",
			Border:     "#a3a3a3",
		},
		Output: config.OutputConfig{Dir: t.TempDir(), SVG: "bg.svg", PNG: "bg.png"},
		Render: config.RenderConfig{Backends: []string{"builtin"}},
	}
}

func writeTemplate(t *testing.T, ctx *dmgCtx.Context) {
	t.Helper()
	path := ctx.Config.SVGPath()
	if err := os.WriteFile(path, svg.FromConfig(ctx.Config).Document(), 0644); err != nil {
		t.Fatalf("failed to write SVG template: %v", err)
	}
	ctx.Artifacts.SVGPath = path
}

func TestPipeRendersWithBuiltin(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	cfg := renderConfig(t, 540, 380)
	ctx := dmgCtx.NewContext(context.Background(), cfg, logger)
	writeTemplate(t, ctx)

	if err := (Pipe{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if ctx.Artifacts.Backend != "builtin" {
		t.Errorf("Artifacts.Backend = %q, want %q", ctx.Artifacts.Backend, "builtin")
	}
	if ctx.Artifacts.PNGPath != cfg.PNGPath() {
		t.Errorf("Artifacts.PNGPath = %q, want %q", ctx.Artifacts.PNGPath, cfg.PNGPath())
	}

	w, h, err := raster.Dimensions(cfg.PNGPath())
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	if w != 540 || h != 380 {
		t.Errorf("output = %dx%d, want 540x380", w, h)
	}
}

func TestPipeOverwritesPriorOutput(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	cfg := renderConfig(t, 600, 400)
	ctx := dmgCtx.NewContext(context.Background(), cfg, logger)
	writeTemplate(t, ctx)

	// Stale PNG with the wrong dimensions from an earlier run
	if err := os.WriteFile(cfg.PNGPath(), []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := (Pipe{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	w, h, err := raster.Dimensions(cfg.PNGPath())
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	if w != 600 || h != 400 {
		t.Errorf("output = %dx%d, want 600x400", w, h)
	}
}

func TestPipeWithoutTemplate(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	cfg := renderConfig(t, 540, 380)
	ctx := dmgCtx.NewContext(context.Background(), cfg, logger)

	err := (Pipe{}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "no SVG template") {
		t.Fatalf("Run() error = %v, want missing-template error", err)
	}
}

func TestPipeUnknownBackend(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	cfg := renderConfig(t, 540, 380)
	cfg.Render.Backends = []string{"gimp"}
	ctx := dmgCtx.NewContext(context.Background(), cfg, logger)
	writeTemplate(t, ctx)

	err := (Pipe{}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "gimp") {
		t.Fatalf("Run() error = %v, want unknown-backend error", err)
	}
}

func TestPipeNoBackendAvailable(t *testing.T) {
	chain, err := backend.Chain([]string{"rsvg"})
	if err != nil {
		t.Fatalf("Chain() error = %v", err)
	}
	if chain[0].Available() {
		t.Skip("rsvg-convert installed on this machine")
	}

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	cfg := renderConfig(t, 540, 380)
	cfg.Render.Backends = []string{"rsvg"}
	ctx := dmgCtx.NewContext(context.Background(), cfg, logger)
	writeTemplate(t, ctx)

	runErr := (Pipe{}).Run(ctx)
	if !errors.Is(runErr, backend.ErrNoBackend) {
		t.Fatalf("Run() error = %v, want ErrNoBackend", runErr)
	}

	// Failed selection must not leave a PNG behind
	if _, statErr := os.Stat(cfg.PNGPath()); statErr == nil {
		t.Error("Run() wrote a PNG despite failing")
	}
}

func TestPipeString(t *testing.T) {
	p := Pipe{}
	expected := "rasterizing background"
	if got := p.String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}
