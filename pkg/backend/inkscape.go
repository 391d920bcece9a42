package backend

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// inkscapeAppBundle is where the Inkscape.app installer places the binary
// when inkscape is not linked onto PATH.
const inkscapeAppBundle = "/Applications/Inkscape.app/Contents/MacOS/inkscape"

// Inkscape rasterizes with the Inkscape CLI, probing PATH first and the
// macOS app bundle second. Honors exact output dimensions.
type Inkscape struct{}

func (Inkscape) Name() string { return "inkscape" }

func (i Inkscape) Available() bool {
	return i.binary() != ""
}

func (i Inkscape) Render(ctx context.Context, svgPath, pngPath string, width, height int) error {
	bin := i.binary()
	if bin == "" {
		return fmt.Errorf("inkscape not found — install it with: brew install --cask inkscape")
	}

	return runTool(ctx, bin,
		svgPath,
		"--export-type=png",
		"--export-filename="+pngPath,
		"-w", strconv.Itoa(width),
		"-h", strconv.Itoa(height),
	)
}

func (Inkscape) binary() string {
	if path, err := exec.LookPath("inkscape"); err == nil {
		return path
	}
	if info, err := os.Stat(inkscapeAppBundle); err == nil && info.Mode().IsRegular() {
		return inkscapeAppBundle
	}
	return ""
}
