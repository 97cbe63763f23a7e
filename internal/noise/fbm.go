package noise

import "fmt"

// octaveSeedStep spaces the per-octave sub-seeds so octaves never share
// a lattice. fbm(seed, octave i) uses seed + i*octaveSeedStep.
const octaveSeedStep = 1337

// FBMParams configures fractal Brownian motion composition.
type FBMParams struct {
	BaseScale   float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// FBM composes Perlin octaves at decreasing amplitude and increasing
// frequency into one normalized field. Octave i renders at scale
// BaseScale/frequency with sub-seed seed + i*octaveSeedStep, so a single
// octave equals Perlin(..., BaseScale, seed).
func FBM(width, height int, p FBMParams, seed int64) (*Field, error) {
	if p.Octaves < 1 {
		return nil, fmt.Errorf("%w: octaves must be >= 1, got %d", ErrInvalidParameter, p.Octaves)
	}
	if p.BaseScale <= 0 {
		return nil, fmt.Errorf("%w: base scale must be > 0, got %v", ErrInvalidParameter, p.BaseScale)
	}

	total := NewField(width, height)
	amplitude := 1.0
	frequency := 1.0
	maxAmplitude := 0.0

	for i := 0; i < p.Octaves; i++ {
		layer, err := Perlin(width, height, p.BaseScale/frequency, seed+int64(i)*octaveSeedStep)
		if err != nil {
			return nil, err
		}
		for j, v := range layer.V {
			total.V[j] += v * amplitude
		}
		maxAmplitude += amplitude
		amplitude *= p.Persistence
		frequency *= p.Lacunarity
	}

	// A zero amplitude sum would divide by zero; return the raw field.
	if maxAmplitude == 0 {
		return total, nil
	}
	for i, v := range total.V {
		total.V[i] = clamp01(v / maxAmplitude)
	}
	return total, nil
}
