package style

import (
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
)

// SurfaceGrain overlays low-amplitude structured noise on the image.
// Material presets use it for wood fiber and copper patina. scale
// controls the feature size in pixels; strength in [0,1] scales the
// per-channel delta.
func SurfaceGrain(img *image.RGBA, scale, strength float64, seed int64) {
	if strength <= 0 || scale <= 0 {
		return
	}
	p := perlin.NewPerlin(2.0, 2.0, 3, seed)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		ny := float64(y-b.Min.Y) / scale
		for x := b.Min.X; x < b.Max.X; x++ {
			nx := float64(x-b.Min.X) / scale
			// Noise2D returns roughly [-1, 1]
			delta := p.Noise2D(nx, ny) * strength * 32.0
			d := int(math.Round(delta))

			c := img.RGBAAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: clampChannel(int(c.R) + d),
				G: clampChannel(int(c.G) + d),
				B: clampChannel(int(c.B) + d),
				A: c.A,
			})
		}
	}
}
