// Package silhouette provides boolean shape masks for item textures.
// Masks are purely geometric functions of the texture size; no
// randomness is involved, so a shape at a given size is always the
// same mask.
package silhouette

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownShape is returned when a shape name has no generator.
var ErrUnknownShape = errors.New("unknown shape")

// Mask is a 2D boolean grid, true where the shape occupies a pixel.
type Mask struct {
	W, H int
	On   []bool
}

// NewMask allocates an all-false mask.
func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, On: make([]bool, w*h)}
}

// At reports whether (x, y) is inside the shape.
func (m *Mask) At(x, y int) bool {
	return m.On[y*m.W+x]
}

// Set marks (x, y).
func (m *Mask) Set(x, y int, on bool) {
	m.On[y*m.W+x] = on
}

// Count returns the number of shape pixels.
func (m *Mask) Count() int {
	n := 0
	for _, on := range m.On {
		if on {
			n++
		}
	}
	return n
}

var shapes = map[string]func(size int) *Mask{
	"bottle":   Bottle,
	"flask":    Flask,
	"can":      Can,
	"seed":     Seed,
	"crop":     Crop,
	"berry":    Berry,
	"herb":     Herb,
	"mushroom": Mushroom,
}

// Names returns the sorted shape names.
func Names() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup generates the named shape mask or returns ErrUnknownShape.
func Lookup(name string, size int) (*Mask, error) {
	gen, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return gen(size), nil
}

// rowRadius fills every row with a horizontal band of the given
// half-width around the center column.
func rowRadius(size int, radius func(y int) float64) *Mask {
	m := NewMask(size, size)
	cx := size / 2
	for y := 0; y < size; y++ {
		r := radius(y)
		for x := 0; x < size; x++ {
			if abs(x-cx) <= r {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Bottle is a narrow neck over a widening body.
func Bottle(size int) *Mask {
	fs := float64(size)
	return rowRadius(size, func(y int) float64 {
		fy := float64(y)
		switch {
		case fy < fs*0.2:
			return fs * 0.12
		case fy < fs*0.6:
			return fs * 0.25
		default:
			return fs * 0.35
		}
	})
}

// Flask is a thin neck over a wide bulb.
func Flask(size int) *Mask {
	fs := float64(size)
	return rowRadius(size, func(y int) float64 {
		if float64(y) < fs*0.3 {
			return fs * 0.15
		}
		return fs * 0.4
	})
}

// Can is a centered rectangle.
func Can(size int) *Mask {
	m := NewMask(size, size)
	fs := float64(size)
	for y := int(fs * 0.1); y < int(fs*0.9); y++ {
		for x := int(fs * 0.25); x < int(fs*0.75); x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

// Seed is a vertical ellipse.
func Seed(size int) *Mask {
	return ellipse(size, 0.25, 0.35)
}

// Berry is a circle.
func Berry(size int) *Mask {
	return ellipse(size, 0.3, 0.3)
}

// Crop is a field of vertical stalks below a sky band.
func Crop(size int) *Mask {
	m := NewMask(size, size)
	top := float64(size) * 0.2
	for y := 0; y < size; y++ {
		if float64(y) <= top {
			continue
		}
		for x := 0; x < size; x += 4 {
			m.Set(x, y, true)
		}
	}
	return m
}

// Herb is a diagonal sprig pattern.
func Herb(size int) *Mask {
	m := NewMask(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%7 == 0 {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Mushroom is a wide cap over a narrow stem.
func Mushroom(size int) *Mask {
	fs := float64(size)
	return rowRadius(size, func(y int) float64 {
		if float64(y) < fs*0.5 {
			return fs * 0.4
		}
		return fs * 0.2
	})
}

func ellipse(size int, rxFrac, ryFrac float64) *Mask {
	m := NewMask(size, size)
	c := float64(size / 2)
	rx := float64(size) * rxFrac
	ry := float64(size) * ryFrac
	for y := 0; y < size; y++ {
		dy := (float64(y) - c) / ry
		for x := 0; x < size; x++ {
			dx := (float64(x) - c) / rx
			if dx*dx+dy*dy < 1 {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

func abs(x int) float64 {
	if x < 0 {
		return float64(-x)
	}
	return float64(x)
}
