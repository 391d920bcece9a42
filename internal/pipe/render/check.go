package render

import (
	"fmt"
	"path/filepath"

	"github.com/dmgcanvas/dmgcanvas/pkg/backend"
	"github.com/dmgcanvas/dmgcanvas/pkg/context"
	"github.com/dmgcanvas/dmgcanvas/pkg/validate"
)

// CheckPipe validates the backend chain and output file names
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating render configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	cfg := ctx.Config

	if err := validate.RequiredSlice(cfg.Render.Backends, "render.backends"); err != nil {
		return err
	}
	if err := validate.AllOneOf(cfg.Render.Backends, backend.Names(), "render.backends"); err != nil {
		return err
	}

	// Output entries are file names placed in output.dir, never paths
	for field, name := range map[string]string{
		"output.svg": cfg.Output.SVG,
		"output.png": cfg.Output.PNG,
	} {
		if name != filepath.Base(name) || name == "." {
			return fmt.Errorf("%s must be a plain file name, got %q", field, name)
		}
	}

	ctx.Logger.Debug("Render configuration validated successfully")
	return nil
}
