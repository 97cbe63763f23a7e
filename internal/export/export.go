// Package export encodes generated fields and textures to disk. It is
// the only place the generator touches the filesystem; the core
// packages stay pure.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/disintegration/gift"
	"github.com/setanarut/apng"

	"github.com/MeKo-Tech/pixsynth/internal/noise"
)

// FieldToGray converts a normalized field to an 8-bit grayscale image.
func FieldToGray(f *noise.Field) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.W, f.H))
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(f.At(x, y) * 255)})
		}
	}
	return img
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// EncodePNG encodes img to an in-memory PNG, for archive storage.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteAPNG writes frames as a true animated PNG. delay is in 1/100ths
// of a second per frame.
func WriteAPNG(path string, frames []*image.RGBA, delay int) error {
	imgs := make([]image.Image, len(frames))
	for i, f := range frames {
		imgs[i] = f
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write apng %s: %w", path, err)
	}
	defer file.Close()

	delays := make([]uint16, len(imgs))
	for i := range delays {
		delays[i] = uint16(delay)
	}
	if err := apng.EncodeAll(file, &apng.APNG{Images: imgs, Delays: delays}); err != nil {
		return fmt.Errorf("failed to write apng %s: %w", path, err)
	}
	return nil
}

// Upscale blows the image up by an integer factor with nearest-neighbor
// resampling, keeping pixel-art edges crisp. factor <= 1 returns the
// input untouched.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	g := gift.New(gift.Resize(b.Dx()*factor, b.Dy()*factor, gift.NearestNeighborResampling))
	dst := image.NewRGBA(g.Bounds(b))
	g.Draw(dst, img)
	return dst
}
