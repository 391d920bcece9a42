package verify

import (
	"fmt"

	"github.com/dmgcanvas/dmgcanvas/pkg/context"
	"github.com/dmgcanvas/dmgcanvas/pkg/raster"
)

// Pipe reads back the final PNG and requires its pixel dimensions to match
// the configured canvas exactly. A mismatch here means the corrective
// transform did not run or did not help; partial output is never success.
type Pipe struct{}

func (Pipe) String() string { return "verifying output dimensions" }

func (Pipe) Run(ctx *context.Context) error {
	if ctx.Artifacts.PNGPath == "" {
		return fmt.Errorf("no PNG found to verify — ensure the render step completed successfully")
	}

	want := ctx.Config.Canvas
	gotW, gotH, err := raster.Dimensions(ctx.Artifacts.PNGPath)
	if err != nil {
		return err
	}

	if gotW != want.Width || gotH != want.Height {
		return raster.NewDimensionError(ctx.Artifacts.PNGPath, gotW, gotH, want.Width, want.Height)
	}

	ctx.Artifacts.Width = gotW
	ctx.Artifacts.Height = gotH
	ctx.Logger.Infof("Background verified: %s (%dx%d)", ctx.Artifacts.PNGPath, gotW, gotH)
	return nil
}
