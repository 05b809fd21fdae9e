package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return &buf
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()

	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("thumbnail is not valid JPEG: %v", err)
	}
	return img
}

func TestGenerateBoundsLandscape(t *testing.T) {
	data, err := Generate(encodePNG(t, 1600, 800))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	bounds := decodeJPEG(t, data).Bounds()
	if bounds.Dx() != MaxSize {
		t.Fatalf("expected width %d, got %d", MaxSize, bounds.Dx())
	}
	if bounds.Dy() != MaxSize/2 {
		t.Fatalf("expected aspect-preserving height %d, got %d", MaxSize/2, bounds.Dy())
	}
}

func TestGenerateBoundsPortrait(t *testing.T) {
	data, err := Generate(encodePNG(t, 500, 1000))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	bounds := decodeJPEG(t, data).Bounds()
	if bounds.Dy() != MaxSize {
		t.Fatalf("expected height %d, got %d", MaxSize, bounds.Dy())
	}
	if bounds.Dx() != MaxSize/2 {
		t.Fatalf("expected aspect-preserving width %d, got %d", MaxSize/2, bounds.Dx())
	}
}

func TestGenerateKeepsSmallImages(t *testing.T) {
	data, err := Generate(encodePNG(t, 200, 120))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	bounds := decodeJPEG(t, data).Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 120 {
		t.Fatalf("expected small image to stay 200x120, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestGenerateRejectsInvalidImages(t *testing.T) {
	if _, err := Generate(strings.NewReader("not an image")); err == nil {
		t.Fatalf("expected error for undecodable input")
	}
}
