// Package thumbnail derives bounded JPEG previews from source photos.
package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

const (
	// MaxSize bounds both thumbnail dimensions.
	MaxSize = 400

	jpegQuality = 85
)

// Generate decodes the source image, scales it to fit within
// MaxSize×MaxSize preserving aspect ratio, and returns it encoded as
// JPEG. Images already inside the bound are re-encoded unscaled.
func Generate(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode source image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > MaxSize || h > MaxSize {
		tw, th := fit(w, h, MaxSize)
		scaled := image.NewRGBA(image.Rect(0, 0, tw, th))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// fit shrinks (w, h) proportionally so the longer side equals max.
func fit(w, h, max int) (int, int) {
	if w >= h {
		th := h * max / w
		if th < 1 {
			th = 1
		}
		return max, th
	}
	tw := w * max / h
	if tw < 1 {
		tw = 1
	}
	return tw, max
}
