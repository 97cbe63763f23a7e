// Package style applies pixel-art stylization passes to rendered
// textures: vertical shading, per-pixel jitter, silhouette outlines,
// edge highlights, and background masking. Passes mutate the image in
// place and are applied in the order the caller chooses.
package style

import (
	"image"
	"image/color"
	"math"

	"github.com/MeKo-Tech/pixsynth/internal/rng"
	"github.com/MeKo-Tech/pixsynth/internal/silhouette"
)

// OutlineColor is the fixed dark recolor applied to silhouette edges.
var OutlineColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}

// Edge rows for EdgeHighlight.
const (
	SideTop    = "top"
	SideBottom = "bottom"
)

// VerticalShade multiplies each row by a factor derived from a cosine
// curve of the normalized row position. strength in [0,1]; 0 is a no-op.
func VerticalShade(img *image.RGBA, strength float64) {
	if strength <= 0 {
		return
	}
	b := img.Bounds()
	h := b.Dy()
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		shade := math.Cos((t-0.5)*math.Pi)*0.5 + 0.5
		factor := 1.0 - (1.0-shade)*strength
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, b.Min.Y+y)
			img.SetRGBA(x, b.Min.Y+y, color.RGBA{
				R: scaleChannel(c.R, factor),
				G: scaleChannel(c.G, factor),
				B: scaleChannel(c.B, factor),
				A: c.A,
			})
		}
	}
}

// Jitter adds bounded symmetric noise in [-amount, +amount] per channel
// per pixel from its own seeded source, then clamps to 8-bit range.
// The seed must be derived from the frame seed, not equal to it, so the
// jitter stream never aliases the structural noise stream.
func Jitter(img *image.RGBA, amount int, seed int64) {
	if amount <= 0 {
		return
	}
	src := rng.New(seed)
	b := img.Bounds()
	span := amount*2 + 1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: clampChannel(int(c.R) + src.Intn(span) - amount),
				G: clampChannel(int(c.G) + src.Intn(span) - amount),
				B: clampChannel(int(c.B) + src.Intn(span) - amount),
				A: c.A,
			})
		}
	}
}

// Outline recolors mask pixels that have a 4-connected off neighbor to
// OutlineColor. Neighbors outside the canvas count as on, so a mask that
// covers the full canvas is left untouched.
func Outline(img *image.RGBA, mask *silhouette.Mask) {
	edges := make([]bool, mask.W*mask.H)
	for y := 0; y < mask.H; y++ {
		for x := 0; x < mask.W; x++ {
			if !mask.At(x, y) {
				continue
			}
			if offNeighbor(mask, x, y) {
				edges[y*mask.W+x] = true
			}
		}
	}
	b := img.Bounds()
	for y := 0; y < mask.H; y++ {
		for x := 0; x < mask.W; x++ {
			if edges[y*mask.W+x] {
				img.SetRGBA(b.Min.X+x, b.Min.Y+y, OutlineColor)
			}
		}
	}
}

func offNeighbor(mask *silhouette.Mask, x, y int) bool {
	if x > 0 && !mask.At(x-1, y) {
		return true
	}
	if x < mask.W-1 && !mask.At(x+1, y) {
		return true
	}
	if y > 0 && !mask.At(x, y-1) {
		return true
	}
	if y < mask.H-1 && !mask.At(x, y+1) {
		return true
	}
	return false
}

// EdgeHighlight brightens the top row by 1+strength or darkens the
// bottom row by 1-strength. Used for material textures with no mask.
func EdgeHighlight(img *image.RGBA, side string, strength float64) {
	b := img.Bounds()
	var y int
	var factor float64
	switch side {
	case SideTop:
		y = b.Min.Y
		factor = 1.0 + strength
	case SideBottom:
		y = b.Max.Y - 1
		factor = 1.0 - strength
	default:
		return
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		c := img.RGBAAt(x, y)
		img.SetRGBA(x, y, color.RGBA{
			R: scaleChannel(c.R, factor),
			G: scaleChannel(c.G, factor),
			B: scaleChannel(c.B, factor),
			A: c.A,
		})
	}
}

// MaskBackground forces pixels outside the mask to the background color.
func MaskBackground(img *image.RGBA, mask *silhouette.Mask, bg color.RGBA) {
	b := img.Bounds()
	for y := 0; y < mask.H; y++ {
		for x := 0; x < mask.W; x++ {
			if !mask.At(x, y) {
				img.SetRGBA(b.Min.X+x, b.Min.Y+y, bg)
			}
		}
	}
}

func scaleChannel(c uint8, factor float64) uint8 {
	return clampChannel(int(math.Round(float64(c) * factor)))
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
