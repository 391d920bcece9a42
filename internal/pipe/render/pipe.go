package render

import (
	"fmt"
	"os"

	"github.com/dmgcanvas/dmgcanvas/pkg/backend"
	"github.com/dmgcanvas/dmgcanvas/pkg/context"
	"github.com/dmgcanvas/dmgcanvas/pkg/raster"
)

// Pipe rasterizes the SVG template through the first available backend in
// the configured chain, then conforms the output to the canvas dimensions
// when the backend produced a different shape.
type Pipe struct{}

func (Pipe) String() string { return "rasterizing background" }

func (Pipe) Run(ctx *context.Context) error {
	cfg := ctx.Config

	if ctx.Artifacts.SVGPath == "" {
		return fmt.Errorf("no SVG template found — ensure the template step completed successfully")
	}

	chain, err := backend.Chain(cfg.Render.Backends)
	if err != nil {
		return err
	}

	b, err := backend.Select(chain)
	if err != nil {
		return err
	}
	ctx.Logger.Infof("Using backend: %s", b.Name())

	width, height := cfg.Canvas.Width, cfg.Canvas.Height
	pngPath := cfg.PNGPath()

	if err := b.Render(ctx.StdCtx, ctx.Artifacts.SVGPath, pngPath, width, height); err != nil {
		return fmt.Errorf("backend %s: %w", b.Name(), err)
	}

	if _, err := os.Stat(pngPath); err != nil {
		return fmt.Errorf("backend %s produced no output at %s: %w", b.Name(), pngPath, err)
	}

	gotW, gotH, err := raster.Dimensions(pngPath)
	if err != nil {
		return fmt.Errorf("backend %s produced unreadable output: %w", b.Name(), err)
	}

	if gotW != width || gotH != height {
		ctx.Logger.Infof("Correcting %dx%d output to %dx%d", gotW, gotH, width, height)
		if err := raster.Conform(pngPath, width, height); err != nil {
			return fmt.Errorf("corrective transform failed: %w", err)
		}
	}

	ctx.Artifacts.PNGPath = pngPath
	ctx.Artifacts.Backend = b.Name()
	ctx.Logger.Infof("Background rasterized: %s", pngPath)
	return nil
}
