package noise

import (
	"errors"
	"fmt"

	"github.com/MeKo-Tech/pixsynth/internal/rng"
)

// Errors reported by the generators. Callers match them with errors.Is.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrUnknownType      = errors.New("unknown noise type")
	ErrUnknownMetric    = errors.New("unknown distance metric")
)

// Distance metrics for Worley noise.
const (
	MetricEuclidean = "euclidean"
	MetricManhattan = "manhattan"
)

// Config selects a noise type and its parameters. A nil Seed means a
// fresh random seed is drawn for the call.
type Config struct {
	Type        string
	Width       int
	Height      int
	Seed        *int64
	Scale       float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Points      int
	Metric      string
}

// DefaultConfig returns the parameter defaults shared with the CLI.
func DefaultConfig(width, height int) Config {
	return Config{
		Type:        "perlin",
		Width:       width,
		Height:      height,
		Scale:       32.0,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Points:      32,
		Metric:      MetricEuclidean,
	}
}

// Generate dispatches on cfg.Type and returns a field with values in [0, 1].
func Generate(cfg Config) (*Field, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidParameter, cfg.Width, cfg.Height)
	}

	seed := rng.Resolve(cfg.Seed)

	switch cfg.Type {
	case "white":
		return White(cfg.Width, cfg.Height, seed), nil
	case "perlin":
		return Perlin(cfg.Width, cfg.Height, cfg.Scale, seed)
	case "fractal", "fbm":
		return FBM(cfg.Width, cfg.Height, FBMParams{
			BaseScale:   cfg.Scale,
			Octaves:     cfg.Octaves,
			Persistence: cfg.Persistence,
			Lacunarity:  cfg.Lacunarity,
		}, seed)
	case "worley", "cellular":
		return Worley(cfg.Width, cfg.Height, cfg.Points, cfg.Metric, seed)
	default:
		return nil, fmt.Errorf("%w: %q (valid: white, perlin, fractal, fbm, worley, cellular)", ErrUnknownType, cfg.Type)
	}
}

// White fills a field with one independent uniform draw per pixel,
// row major.
func White(width, height int, seed int64) *Field {
	src := rng.New(seed)
	f := NewField(width, height)
	for i := range f.V {
		f.V[i] = src.Float64()
	}
	return f
}
