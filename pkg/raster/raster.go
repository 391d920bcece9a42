// Package raster inspects and corrects rasterized output.
//
// Backends do not all honor exact output dimensions — qlmanage in particular
// fits its thumbnail into a square of the larger dimension — so the render
// pipe reads back the produced PNG and conforms it to the configured canvas
// before verification.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// DimensionError reports a PNG whose pixel dimensions do not match the
// configured canvas after all corrective steps.
type DimensionError struct {
	Path      string
	Got, Want string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s has dimensions %s, want %s", e.Path, e.Got, e.Want)
}

// NewDimensionError builds a DimensionError from raw pixel values.
func NewDimensionError(path string, gotW, gotH, wantW, wantH int) *DimensionError {
	return &DimensionError{
		Path: path,
		Got:  fmt.Sprintf("%dx%d", gotW, gotH),
		Want: fmt.Sprintf("%dx%d", wantW, wantH),
	}
}

// Dimensions reads the pixel dimensions of an image file without decoding
// pixel data.
func Dimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// Conform rewrites the PNG at path so its pixel dimensions are exactly
// width×height. A matching image is left untouched. An image that covers the
// target in both dimensions is cropped from the top-left, which keeps the
// title header and cuts bottom/right padding — the shape qlmanage's square
// thumbnails need. Anything else is scaled to cover the target first, then
// cropped.
func Conform(path string, width, height int) error {
	img, err := decodePNG(path)
	if err != nil {
		return err
	}

	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return nil
	}

	var src image.Image = img
	if b.Dx() < width || b.Dy() < height {
		src = scaleToCover(img, width, height)
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)

	return encodePNG(path, out)
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PNG: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG: %w", err)
	}
	return img, nil
}

func encodePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// scaleToCover resizes img so both dimensions are at least width×height,
// preserving aspect ratio.
func scaleToCover(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	scale := math.Max(
		float64(width)/float64(b.Dx()),
		float64(height)/float64(b.Dy()),
	)

	sw := int(math.Ceil(float64(b.Dx()) * scale))
	sh := int(math.Ceil(float64(b.Dy()) * scale))
	if sw < width {
		sw = width
	}
	if sh < height {
		sh = height
	}

	dst := image.NewRGBA(image.Rect(0, 0, sw, sh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
