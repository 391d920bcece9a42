package backend

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Builtin rasterizes in-process with oksvg and rasterx, requiring no external
// tools. It does not draw SVG text elements — oksvg only supports shapes — so
// the default chain omits it; list it in render.backends to opt in as a
// last-resort fallback when no tool can be installed.
type Builtin struct{}

func (Builtin) Name() string { return "builtin" }

func (Builtin) Available() bool { return true }

func (Builtin) Render(ctx context.Context, svgPath, pngPath string, width, height int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	icon, err := oksvg.ReadIcon(svgPath, oksvg.WarnErrorMode)
	if err != nil {
		return fmt.Errorf("failed to parse SVG: %w", err)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	f, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
