// Package svg builds the DMG background SVG document from template parameters.
//
// The layout follows the standard installer-window convention: product title
// and subtitle across the top, an arrow glyph between the app icon and the
// Applications folder alias in the vertical middle, and the drag instruction
// along the bottom edge.
package svg

import (
	"bytes"
	"fmt"

	svgo "github.com/ajstarks/svgo"

	"github.com/dmgcanvas/dmgcanvas/pkg/config"
)

// fontFamily matches the macOS system monospace stack so the background
// blends with Finder chrome.
const fontFamily = "SF Mono, SFMono-Regular, Menlo, monospace"

// Params holds everything needed to render one background.
// Immutable per invocation; construct fresh with FromConfig each run.
type Params struct {
	Width  int
	Height int

	Title       string
	Subtitle    string
	Arrow       string
	Instruction string

	Background string
	TextColor  string
	Accent     string
	Border     string
}

// FromConfig builds render parameters from a loaded configuration.
func FromConfig(cfg *config.Config) Params {
	return Params{
		Width:       cfg.Canvas.Width,
		Height:      cfg.Canvas.Height,
		Title:       cfg.Text.Title,
		Subtitle:    cfg.Text.Subtitle,
		Arrow:       cfg.Text.Arrow,
		Instruction: cfg.Text.Instruction,
		Background:  cfg.Palette.Background,
		TextColor:   cfg.Palette.Text,
		Accent:      cfg.Palette.Accent,
		Border:      cfg.Palette.Border,
	}
}

// Document renders the SVG source as bytes.
func (p Params) Document() []byte {
	buf := new(bytes.Buffer)
	canvas := svgo.New(buf)

	canvas.Startview(p.Width, p.Height, 0, 0, p.Width, p.Height)
	canvas.Rect(0, 0, p.Width, p.Height, "fill:"+p.Background)

	centerX := p.Width / 2

	canvas.Text(centerX, 40, p.Title, textStyle(22, p.TextColor)+";font-weight:600")
	if p.Subtitle != "" {
		canvas.Text(centerX, 60, p.Subtitle, textStyle(10, p.Border))
	}
	if p.Arrow != "" {
		// Midway between the icon row the DMG layout places at mid-height
		canvas.Text(centerX, p.Height/2+5, p.Arrow, textStyle(28, p.Accent))
	}
	if p.Instruction != "" {
		canvas.Text(centerX, p.Height-40, p.Instruction, textStyle(12, p.Border))
	}

	canvas.End()
	return buf.Bytes()
}

func textStyle(size int, fill string) string {
	return fmt.Sprintf("text-anchor:middle;font-family:%s;font-size:%dpx;fill:%s",
		fontFamily, size, fill)
}
