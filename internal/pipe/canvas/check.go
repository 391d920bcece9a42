package canvas

import (
	"github.com/dmgcanvas/dmgcanvas/pkg/context"
	"github.com/dmgcanvas/dmgcanvas/pkg/validate"
)

// CheckPipe validates canvas dimensions
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating canvas dimensions" }

func (CheckPipe) Run(ctx *context.Context) error {
	cfg := ctx.Config.Canvas

	if err := validate.PositiveInt(cfg.Width, "canvas.width"); err != nil {
		return err
	}
	if err := validate.PositiveInt(cfg.Height, "canvas.height"); err != nil {
		return err
	}

	ctx.Logger.Debug("Canvas configuration validated successfully")
	return nil
}
