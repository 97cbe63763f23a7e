package palette

import (
	"image/color"

	"github.com/MeKo-Tech/pixsynth/internal/rng"
	"github.com/lucasb-eyer/go-colorful"
)

// RandomName is the reserved ramp name resolved to an HSV-generated
// palette seeded with the run's seed.
const RandomName = "random"

// GenerateHSV builds a dark-to-light ramp of n colors around a seeded
// base hue. The same seed and n always produce the same ramp.
func GenerateHSV(seed int64, n int) Palette {
	if n < 1 {
		n = 1
	}
	src := rng.New(seed)

	hue := src.Float64() * 360.0
	sat := 0.35 + 0.45*src.Float64()
	hueDrift := (src.Float64() - 0.5) * 40.0

	p := make(Palette, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		h := hue + hueDrift*t
		if h < 0 {
			h += 360
		}
		if h >= 360 {
			h -= 360
		}
		// value runs from dark to light so the ramp behaves like the
		// hand-tuned ones
		v := 0.15 + 0.75*t
		c := colorful.Hsv(h, sat, v)
		r, g, b := c.RGB255()
		p[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return p
}
