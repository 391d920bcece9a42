package pipe

import (
	"github.com/dmgcanvas/dmgcanvas/internal/pipe/canvas"
	"github.com/dmgcanvas/dmgcanvas/internal/pipe/render"
	"github.com/dmgcanvas/dmgcanvas/internal/pipe/template"
	"github.com/dmgcanvas/dmgcanvas/internal/pipe/verify"
)

// ValidationPipes contains all validation pipes, run by check and as the
// first stage of generate.
var ValidationPipes = []Piper{
	canvas.CheckPipe{},   // Validate canvas dimensions
	template.CheckPipe{}, // Validate text and palette
	render.CheckPipe{},   // Validate backend chain and output paths
}

// ExecutionPipes contains all execution pipes, run after validation
// succeeds in the generate command.
var ExecutionPipes = []Piper{
	template.Pipe{}, // Write the SVG source
	render.Pipe{},   // Rasterize via the first available backend
	verify.Pipe{},   // Confirm exact output dimensions
}
