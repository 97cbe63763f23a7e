// Package palette maps normalized scalar fields to RGB through ordered
// color ramps.
package palette

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/MeKo-Tech/pixsynth/internal/noise"
)

// ErrUnknownPalette is returned when a ramp name has no entry.
var ErrUnknownPalette = errors.New("unknown palette")

// Palette is a non-empty ordered ramp from low to high scalar values.
type Palette []color.RGBA

// ramps holds the named color ramps. Item ramps come first, material
// ramps after; order within a ramp runs dark to light.
var ramps = map[string]Palette{
	"glass": {
		{R: 230, G: 240, B: 255, A: 255},
		{R: 190, G: 210, B: 230, A: 255},
		{R: 150, G: 170, B: 190, A: 255},
	},
	"liquid_amber": {
		{R: 60, G: 30, B: 10, A: 255},
		{R: 120, G: 70, B: 20, A: 255},
		{R: 180, G: 120, B: 60, A: 255},
	},
	"liquid_red": {
		{R: 40, G: 10, B: 20, A: 255},
		{R: 90, G: 20, B: 40, A: 255},
		{R: 150, G: 40, B: 80, A: 255},
	},
	"metal": {
		{R: 60, G: 60, B: 60, A: 255},
		{R: 110, G: 110, B: 110, A: 255},
		{R: 160, G: 160, B: 160, A: 255},
	},
	"seed": {
		{R: 40, G: 30, B: 10, A: 255},
		{R: 80, G: 60, B: 20, A: 255},
		{R: 120, G: 90, B: 40, A: 255},
	},
	"crop_green": {
		{R: 20, G: 60, B: 20, A: 255},
		{R: 40, G: 100, B: 40, A: 255},
		{R: 80, G: 150, B: 80, A: 255},
	},
	"berry": {
		{R: 60, G: 10, B: 20, A: 255},
		{R: 120, G: 20, B: 40, A: 255},
		{R: 180, G: 40, B: 60, A: 255},
	},
	"herb": {
		{R: 30, G: 70, B: 30, A: 255},
		{R: 60, G: 120, B: 60, A: 255},
		{R: 110, G: 180, B: 110, A: 255},
	},
	"mushroom": {
		{R: 80, G: 60, B: 40, A: 255},
		{R: 120, G: 90, B: 60, A: 255},
		{R: 160, G: 130, B: 90, A: 255},
	},
	"beer": {
		{R: 32, G: 16, B: 4, A: 255},
		{R: 74, G: 38, B: 9, A: 255},
		{R: 124, G: 72, B: 18, A: 255},
		{R: 169, G: 111, B: 39, A: 255},
		{R: 210, G: 155, B: 70, A: 255},
		{R: 238, G: 198, B: 120, A: 255},
	},
	"red_wine": {
		{R: 24, G: 4, B: 16, A: 255},
		{R: 60, G: 8, B: 32, A: 255},
		{R: 96, G: 16, B: 48, A: 255},
		{R: 128, G: 24, B: 64, A: 255},
		{R: 168, G: 36, B: 88, A: 255},
		{R: 210, G: 64, B: 120, A: 255},
	},
	"mead": {
		{R: 30, G: 20, B: 4, A: 255},
		{R: 79, G: 54, B: 11, A: 255},
		{R: 132, G: 96, B: 29, A: 255},
		{R: 178, G: 134, B: 55, A: 255},
		{R: 216, G: 170, B: 82, A: 255},
		{R: 240, G: 208, B: 132, A: 255},
	},
	"foam": {
		{R: 230, G: 230, B: 230, A: 255},
		{R: 212, G: 212, B: 212, A: 255},
		{R: 196, G: 196, B: 196, A: 255},
		{R: 176, G: 176, B: 176, A: 255},
		{R: 156, G: 156, B: 156, A: 255},
	},
	"wood": {
		{R: 32, G: 18, B: 8, A: 255},
		{R: 60, G: 34, B: 14, A: 255},
		{R: 92, G: 52, B: 22, A: 255},
		{R: 124, G: 72, B: 30, A: 255},
		{R: 156, G: 96, B: 42, A: 255},
		{R: 188, G: 122, B: 56, A: 255},
	},
	"copper": {
		{R: 46, G: 22, B: 12, A: 255},
		{R: 92, G: 52, B: 28, A: 255},
		{R: 136, G: 80, B: 46, A: 255},
		{R: 176, G: 110, B: 62, A: 255},
		{R: 200, G: 132, B: 84, A: 255},
		{R: 222, G: 164, B: 110, A: 255},
	},
}

// Names returns the sorted ramp names.
func Names() []string {
	names := make([]string, 0, len(ramps))
	for name := range ramps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named ramp or ErrUnknownPalette.
func Lookup(name string) (Palette, error) {
	p, ok := ramps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return p, nil
}

// Resolve returns the named ramp; the name "random" instead yields a
// deterministic HSV-generated ramp for the given seed.
func Resolve(name string, seed int64) (Palette, error) {
	if name == RandomName {
		return GenerateHSV(seed, 5), nil
	}
	return Lookup(name)
}

// Apply maps a normalized field to an RGB image by piecewise-linear
// interpolation across the ramp. v=0 hits the first color exactly, v=1
// the last; a single-color ramp produces a constant image.
func Apply(f *noise.Field, p Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	n := len(p)

	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			pos := f.At(x, y) * float64(n-1)
			idx := int(math.Floor(pos))
			if idx < 0 {
				idx = 0
			}
			if idx > n-1 {
				idx = n - 1
			}
			frac := pos - float64(idx)

			c1 := p[idx]
			c2 := p[min(idx+1, n-1)]
			img.SetRGBA(x, y, color.RGBA{
				R: lerpChannel(c1.R, c2.R, frac),
				G: lerpChannel(c1.G, c2.G, frac),
				B: lerpChannel(c1.B, c2.B, frac),
				A: 255,
			})
		}
	}

	return img
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
