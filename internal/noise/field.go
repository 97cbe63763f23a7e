// Package noise generates seeded 2D scalar noise fields: white noise,
// Perlin-style lattice gradient noise, fractal Brownian motion, and
// Worley/cellular noise. Every public generator returns values clamped
// to [0, 1].
package noise

import "math"

// Field is a 2D scalar field stored row-major.
type Field struct {
	W, H int
	V    []float64
}

// NewField allocates a zero field of the given dimensions.
func NewField(w, h int) *Field {
	return &Field{W: w, H: h, V: make([]float64, w*h)}
}

// At returns the value at (x, y).
func (f *Field) At(x, y int) float64 {
	return f.V[y*f.W+x]
}

// Set stores a value at (x, y).
func (f *Field) Set(x, y int, v float64) {
	f.V[y*f.W+x] = v
}

// Pow raises every value to the given exponent and clamps back to [0, 1].
// Used by material presets to bias the noise distribution.
func (f *Field) Pow(exp float64) {
	for i, v := range f.V {
		f.V[i] = clamp01(math.Pow(v, exp))
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
