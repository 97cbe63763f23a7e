package noise

import (
	"errors"
	"testing"
)

func TestPerlin_InvalidScale(t *testing.T) {
	for _, scale := range []float64{0, -8} {
		_, err := Perlin(16, 16, scale, 1)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Perlin scale=%v: expected ErrInvalidParameter, got %v", scale, err)
		}
	}
}

func TestPerlin_Deterministic(t *testing.T) {
	a, err := Perlin(32, 32, 8, 42)
	if err != nil {
		t.Fatalf("Perlin failed: %v", err)
	}
	b, err := Perlin(32, 32, 8, 42)
	if err != nil {
		t.Fatalf("Perlin failed: %v", err)
	}

	for i := range a.V {
		if a.V[i] != b.V[i] {
			t.Fatalf("Same seed diverged at index %d", i)
		}
	}
}

func TestPerlin_Range(t *testing.T) {
	f, err := Perlin(64, 64, 12, 3)
	if err != nil {
		t.Fatalf("Perlin failed: %v", err)
	}
	for i, v := range f.V {
		if v < 0 || v > 1 {
			t.Fatalf("Value %d out of [0,1]: %v", i, v)
		}
	}
}

func TestPerlin_SmoothNeighbors(t *testing.T) {
	// Adjacent pixels sample nearby lattice positions, so neighbor
	// differences stay small at a coarse scale.
	f, err := Perlin(64, 64, 32, 5)
	if err != nil {
		t.Fatalf("Perlin failed: %v", err)
	}
	for y := 0; y < f.H; y++ {
		for x := 1; x < f.W; x++ {
			d := f.At(x, y) - f.At(x-1, y)
			if d < 0 {
				d = -d
			}
			if d > 0.25 {
				t.Fatalf("Neighbor jump %v at (%d,%d) too large for scale 32", d, x, y)
			}
		}
	}
}

func TestFBM_SingleOctaveMatchesPerlin(t *testing.T) {
	p, err := Perlin(32, 32, 8, 77)
	if err != nil {
		t.Fatalf("Perlin failed: %v", err)
	}
	f, err := FBM(32, 32, FBMParams{BaseScale: 8, Octaves: 1, Persistence: 0.5, Lacunarity: 2}, 77)
	if err != nil {
		t.Fatalf("FBM failed: %v", err)
	}

	for i := range p.V {
		if p.V[i] != f.V[i] {
			t.Fatalf("Single-octave FBM diverged from Perlin at index %d: %v != %v", i, f.V[i], p.V[i])
		}
	}
}

func TestFBM_InvalidParameters(t *testing.T) {
	_, err := FBM(16, 16, FBMParams{BaseScale: 8, Octaves: 0, Persistence: 0.5, Lacunarity: 2}, 1)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Octaves=0: expected ErrInvalidParameter, got %v", err)
	}

	_, err = FBM(16, 16, FBMParams{BaseScale: 0, Octaves: 3, Persistence: 0.5, Lacunarity: 2}, 1)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("BaseScale=0: expected ErrInvalidParameter, got %v", err)
	}
}

func TestFBM_Range(t *testing.T) {
	f, err := FBM(48, 48, FBMParams{BaseScale: 8, Octaves: 4, Persistence: 0.5, Lacunarity: 2}, 9)
	if err != nil {
		t.Fatalf("FBM failed: %v", err)
	}
	for i, v := range f.V {
		if v < 0 || v > 1 {
			t.Fatalf("Value %d out of [0,1]: %v", i, v)
		}
	}
}
