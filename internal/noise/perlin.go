package noise

import (
	"fmt"
	"math"

	"github.com/MeKo-Tech/pixsynth/internal/rng"
)

// Gradient set for the lattice corners. Hash values index into it mod 8.
var grads2D = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// lattice is a seeded permutation table hashing integer cell coordinates
// into the gradient set.
type lattice struct {
	perm [512]uint8
}

func newLattice(seed int64) *lattice {
	l := &lattice{}
	src := rng.New(seed)
	p := make([]uint8, 256)
	for i := range p {
		p[i] = uint8(i)
	}
	src.Shuffle(256, func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	for i := 0; i < 512; i++ {
		l.perm[i] = p[i&255]
	}
	return l
}

// gradDot hashes a lattice corner and returns the dot product of its
// gradient with the offset vector (dx, dy) from the corner to the sample.
func (l *lattice) gradDot(xi, yi int, dx, dy float64) float64 {
	h := l.perm[int(l.perm[xi&255])+(yi&255)]
	g := grads2D[h&7]
	return g[0]*dx + g[1]*dy
}

// fade is the C2-continuous smoothstep 6t^5 - 15t^4 + 10t^3. Blending the
// corner dot products with it instead of raw t avoids visible grid seams.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Perlin generates lattice gradient noise. Pixel (x, y) samples the
// lattice at (x/scale, y/scale). Raw corner blends lie in roughly [-1, 1];
// output is remapped with the affine v*0.5+0.5 and clamped, so feature
// density is stable across seeds (empirical min/max rescaling is
// deliberately not used).
func Perlin(width, height int, scale float64, seed int64) (*Field, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale must be > 0, got %v", ErrInvalidParameter, scale)
	}

	l := newLattice(seed)
	f := NewField(width, height)

	for y := 0; y < height; y++ {
		yg := float64(y) / scale
		y0 := int(math.Floor(yg))
		yf := yg - float64(y0)
		v := fade(yf)

		for x := 0; x < width; x++ {
			xg := float64(x) / scale
			x0 := int(math.Floor(xg))
			xf := xg - float64(x0)
			u := fade(xf)

			d00 := l.gradDot(x0, y0, xf, yf)
			d10 := l.gradDot(x0+1, y0, xf-1, yf)
			d01 := l.gradDot(x0, y0+1, xf, yf-1)
			d11 := l.gradDot(x0+1, y0+1, xf-1, yf-1)

			top := lerp(d00, d10, u)
			bottom := lerp(d01, d11, u)
			f.Set(x, y, clamp01(lerp(top, bottom, v)*0.5+0.5))
		}
	}

	return f, nil
}
