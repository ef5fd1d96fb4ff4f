// Package imgcrop crops uploaded images server-side at native resolution,
// so stored photos match what the admin framed in the browser.
package imgcrop

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Region selects a rectangle in source-image pixel coordinates.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Crop decodes the image from r (JPEG, PNG or GIF), clamps region to the
// image bounds, crops, and re-encodes in the source format. It returns the
// encoded bytes and the format name ("jpeg", "png", "gif").
//
// A region with no area left after clamping is an error.
func Crop(r io.Reader, region Region) ([]byte, string, error) {
	src, formatName, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	rect := clamp(image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height), src.Bounds())
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return nil, "", fmt.Errorf("crop region %+v has no overlap with image bounds %v", region, src.Bounds())
	}

	cropped := imaging.Crop(src, rect)

	format, err := imaging.FormatFromExtension(formatName)
	if err != nil {
		return nil, "", fmt.Errorf("unsupported format %q: %w", formatName, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, cropped, format); err != nil {
		return nil, "", fmt.Errorf("encode %s: %w", formatName, err)
	}

	return buf.Bytes(), formatName, nil
}

func clamp(r, bounds image.Rectangle) image.Rectangle {
	return r.Intersect(bounds)
}
