package backend

import (
	"context"
	"fmt"
	"os/exec"
)

// ImageMagick rasterizes with magick (IM7) or convert (IM6). The "!" flag on
// the resize geometry forces exact dimensions, ignoring aspect ratio.
type ImageMagick struct{}

func (ImageMagick) Name() string { return "imagemagick" }

func (i ImageMagick) Available() bool {
	return i.binary() != ""
}

func (i ImageMagick) Render(ctx context.Context, svgPath, pngPath string, width, height int) error {
	bin := i.binary()
	if bin == "" {
		return fmt.Errorf("imagemagick not found — install it with: brew install imagemagick")
	}

	return runTool(ctx, bin,
		"-background", "none",
		svgPath,
		"-resize", fmt.Sprintf("%dx%d!", width, height),
		pngPath,
	)
}

func (ImageMagick) binary() string {
	if path, err := exec.LookPath("magick"); err == nil {
		return path
	}
	if path, err := exec.LookPath("convert"); err == nil {
		return path
	}
	return ""
}
