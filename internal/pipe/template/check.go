package template

import (
	"github.com/dmgcanvas/dmgcanvas/pkg/context"
	"github.com/dmgcanvas/dmgcanvas/pkg/env"
	"github.com/dmgcanvas/dmgcanvas/pkg/validate"
)

// CheckPipe validates template text and palette configuration
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating template configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	cfg := ctx.Config

	if err := validate.RequiredString(cfg.Text.Title, "text.title"); err != nil {
		return err
	}

	// Text may come from CI via env(VAR); surface unset variables here with
	// the field name rather than rendering the raw placeholder.
	textFields := map[string]string{
		"text.title":       cfg.Text.Title,
		"text.subtitle":    cfg.Text.Subtitle,
		"text.arrow":       cfg.Text.Arrow,
		"text.instruction": cfg.Text.Instruction,
	}
	for field, value := range textFields {
		if err := env.CheckResolved(value, field); err != nil {
			return err
		}
	}

	paletteFields := map[string]string{
		"palette.background": cfg.Palette.Background,
		"palette.text":       cfg.Palette.Text,
		"palette.accent":     cfg.Palette.Accent,
		"palette.border":     cfg.Palette.Border,
	}
	for field, value := range paletteFields {
		if err := validate.HexColor(value, field); err != nil {
			return err
		}
	}

	ctx.Logger.Debug("Template configuration validated successfully")
	return nil
}
