package noise

import (
	"errors"
	"testing"
)

func TestWorley_InvalidParameters(t *testing.T) {
	_, err := Worley(16, 16, 0, MetricEuclidean, 1)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("points=0: expected ErrInvalidParameter, got %v", err)
	}

	_, err = Worley(16, 16, 8, "chebyshev", 1)
	if !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("metric=chebyshev: expected ErrUnknownMetric, got %v", err)
	}
}

func TestWorley_Deterministic(t *testing.T) {
	a, err := Worley(32, 32, 8, MetricEuclidean, 21)
	if err != nil {
		t.Fatalf("Worley failed: %v", err)
	}
	b, err := Worley(32, 32, 8, MetricEuclidean, 21)
	if err != nil {
		t.Fatalf("Worley failed: %v", err)
	}
	for i := range a.V {
		if a.V[i] != b.V[i] {
			t.Fatalf("Same seed diverged at index %d", i)
		}
	}
}

func TestWorley_SinglePointRadial(t *testing.T) {
	f, err := Worley(64, 64, 1, MetricEuclidean, 5)
	if err != nil {
		t.Fatalf("Worley failed: %v", err)
	}

	// Locate the pixel nearest the single feature point.
	minX, minY, minV := 0, 0, 2.0
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if v := f.At(x, y); v < minV {
				minX, minY, minV = x, y, v
			}
		}
	}

	// The nearest pixel is within a pixel of the point itself.
	if minV > 0.05 {
		t.Errorf("Minimum value %v too far from 0 for a 64x64 raster", minV)
	}

	// Along the minimum's row, distance grows monotonically away from it.
	for x := minX + 1; x < f.W; x++ {
		if f.At(x, minY) < f.At(x-1, minY) {
			t.Fatalf("Value decreased moving right at x=%d", x)
		}
	}
	for x := minX - 1; x >= 0; x-- {
		if f.At(x, minY) < f.At(x+1, minY) {
			t.Fatalf("Value decreased moving left at x=%d", x)
		}
	}
}

func TestWorley_ManhattanRange(t *testing.T) {
	f, err := Worley(32, 32, 4, MetricManhattan, 11)
	if err != nil {
		t.Fatalf("Worley failed: %v", err)
	}
	for i, v := range f.V {
		if v < 0 || v > 1 {
			t.Fatalf("Value %d out of [0,1]: %v", i, v)
		}
	}
}

func TestWorley_MetricsDiffer(t *testing.T) {
	a, err := Worley(32, 32, 4, MetricEuclidean, 13)
	if err != nil {
		t.Fatalf("Worley failed: %v", err)
	}
	b, err := Worley(32, 32, 4, MetricManhattan, 13)
	if err != nil {
		t.Fatalf("Worley failed: %v", err)
	}

	same := true
	for i := range a.V {
		if a.V[i] != b.V[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected euclidean and manhattan metrics to produce different fields")
	}
}
