package context

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/dmgcanvas/dmgcanvas/pkg/config"
)

// Artifacts records what the execution pipes have produced so far.
type Artifacts struct {
	SVGPath string // generated SVG source, written by the template pipe
	PNGPath string // rasterized output, written by the render pipe
	Backend string // name of the backend that produced the PNG

	// Verified pixel dimensions, recorded by the verify pipe after the
	// output has been confirmed to match the configured canvas exactly.
	Width  int
	Height int
}

// Context provides shared state for all pipes
type Context struct {
	StdCtx    context.Context // Standard context for cancellation support
	Config    *config.Config
	Logger    *logrus.Logger
	Artifacts Artifacts
}

// NewContext creates a new context with the given standard context, config, and logger.
// If stdCtx is nil, context.Background() is used.
func NewContext(stdCtx context.Context, cfg *config.Config, logger *logrus.Logger) *Context {
	if stdCtx == nil {
		stdCtx = context.Background()
	}
	return &Context{
		StdCtx: stdCtx,
		Config: cfg,
		Logger: logger,
	}
}

// Done returns the done channel from the standard context for cancellation support
func (c *Context) Done() <-chan struct{} {
	return c.StdCtx.Done()
}

// Err returns the error from the standard context
func (c *Context) Err() error {
	return c.StdCtx.Err()
}
