package backend

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// RSVG rasterizes with rsvg-convert from librsvg. It honors exact output
// dimensions, so no corrective transform is needed.
type RSVG struct{}

func (RSVG) Name() string { return "rsvg" }

func (RSVG) Available() bool {
	_, err := exec.LookPath("rsvg-convert")
	return err == nil
}

func (RSVG) Render(ctx context.Context, svgPath, pngPath string, width, height int) error {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return fmt.Errorf("rsvg-convert not found — install librsvg with: brew install librsvg")
	}

	return runTool(ctx, "rsvg-convert",
		"-w", strconv.Itoa(width),
		"-h", strconv.Itoa(height),
		svgPath,
		"-o", pngPath,
	)
}
