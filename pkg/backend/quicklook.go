package backend

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// QuickLook rasterizes with the macOS Quick Look thumbnail service.
// qlmanage -t -s SIZE fits the thumbnail into a SIZE×SIZE square, so the
// output virtually always needs the corrective crop applied by the caller.
type QuickLook struct{}

func (QuickLook) Name() string { return "quicklook" }

func (QuickLook) Available() bool {
	_, err := exec.LookPath("qlmanage")
	return err == nil
}

func (QuickLook) Render(ctx context.Context, svgPath, pngPath string, width, height int) error {
	if _, err := exec.LookPath("qlmanage"); err != nil {
		return fmt.Errorf("qlmanage not found — the Quick Look backend only works on macOS")
	}

	// Size the square to the larger dimension so the thumbnail covers the
	// target canvas and cropping never has to upscale.
	size := width
	if height > size {
		size = height
	}

	outDir := filepath.Dir(pngPath)
	if err := runTool(ctx, "qlmanage", "-t", "-s", strconv.Itoa(size), "-o", outDir, svgPath); err != nil {
		return err
	}

	// qlmanage names its output <source>.png next to -o
	thumb := filepath.Join(outDir, filepath.Base(svgPath)+".png")
	if _, err := os.Stat(thumb); err != nil {
		return fmt.Errorf("qlmanage produced no thumbnail at %s: %w", thumb, err)
	}

	if err := os.Rename(thumb, pngPath); err != nil {
		return fmt.Errorf("failed to move thumbnail into place: %w", err)
	}
	return nil
}
