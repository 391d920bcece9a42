package template

import (
	"fmt"
	"os"

	"github.com/dmgcanvas/dmgcanvas/pkg/context"
	"github.com/dmgcanvas/dmgcanvas/pkg/svg"
)

// Pipe writes the SVG source for the background into the output directory.
// The file is overwritten unconditionally on every run.
type Pipe struct{}

func (Pipe) String() string { return "writing SVG template" }

func (Pipe) Run(ctx *context.Context) error {
	cfg := ctx.Config

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.Output.Dir, err)
	}

	params := svg.FromConfig(cfg)
	path := cfg.SVGPath()

	if err := os.WriteFile(path, params.Document(), 0644); err != nil {
		return fmt.Errorf("failed to write SVG template: %w", err)
	}

	ctx.Artifacts.SVGPath = path
	ctx.Logger.Infof("SVG template written: %s", path)
	return nil
}
