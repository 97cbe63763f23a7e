package noise

import (
	"fmt"
	"math"

	"github.com/MeKo-Tech/pixsynth/internal/rng"
)

// Worley scatters feature points uniformly in [0,1]^2 and fills each pixel
// with its distance to the nearest point, normalized by the maximum
// possible distance in the unit square for the metric (sqrt(2) euclidean,
// 2 manhattan). The scan is O(width*height*points), fine for the small
// rasters and low point counts this tool targets.
func Worley(width, height, points int, metric string, seed int64) (*Field, error) {
	if points < 1 {
		return nil, fmt.Errorf("%w: point count must be >= 1, got %d", ErrInvalidParameter, points)
	}

	var dist func(dx, dy float64) float64
	var maxDist float64
	switch metric {
	case MetricEuclidean:
		dist = func(dx, dy float64) float64 { return math.Hypot(dx, dy) }
		maxDist = math.Sqrt2
	case MetricManhattan:
		dist = func(dx, dy float64) float64 { return math.Abs(dx) + math.Abs(dy) }
		maxDist = 2.0
	default:
		return nil, fmt.Errorf("%w: %q (valid: euclidean, manhattan)", ErrUnknownMetric, metric)
	}

	src := rng.New(seed)
	px := make([]float64, points)
	py := make([]float64, points)
	for i := 0; i < points; i++ {
		px[i] = src.Float64()
		py[i] = src.Float64()
	}

	f := NewField(width, height)
	for y := 0; y < height; y++ {
		sy := float64(y) / float64(height)
		for x := 0; x < width; x++ {
			sx := float64(x) / float64(width)
			nearest := math.MaxFloat64
			for i := 0; i < points; i++ {
				if d := dist(sx-px[i], sy-py[i]); d < nearest {
					nearest = d
				}
			}
			f.Set(x, y, clamp01(nearest/maxDist))
		}
	}

	return f, nil
}
