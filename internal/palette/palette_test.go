package palette

import (
	"errors"
	"testing"

	"github.com/MeKo-Tech/pixsynth/internal/noise"
)

func TestApply_Endpoints(t *testing.T) {
	p, err := Lookup("glass")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	f := noise.NewField(2, 1)
	f.Set(0, 0, 0.0)
	f.Set(1, 0, 1.0)

	img := Apply(f, p)

	if got := img.RGBAAt(0, 0); got != p[0] {
		t.Errorf("v=0 mapped to %v, want first ramp color %v", got, p[0])
	}
	if got := img.RGBAAt(1, 0); got != p[len(p)-1] {
		t.Errorf("v=1 mapped to %v, want last ramp color %v", got, p[len(p)-1])
	}
}

func TestApply_SingleColorRamp(t *testing.T) {
	p := Palette{{R: 10, G: 20, B: 30, A: 255}}

	f := noise.NewField(4, 4)
	f.Set(0, 0, 0.0)
	f.Set(1, 0, 0.33)
	f.Set(2, 0, 0.77)
	f.Set(3, 0, 1.0)

	img := Apply(f, p)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := img.RGBAAt(x, y); got != p[0] {
				t.Fatalf("Pixel (%d,%d) = %v, want constant %v", x, y, got, p[0])
			}
		}
	}
}

func TestApply_Opaque(t *testing.T) {
	p, _ := Lookup("beer")
	f := noise.NewField(8, 8)
	for i := range f.V {
		f.V[i] = float64(i) / float64(len(f.V)-1)
	}

	img := Apply(f, p)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if img.RGBAAt(x, y).A != 255 {
				t.Fatalf("Pixel (%d,%d) not opaque", x, y)
			}
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("neon")
	if !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("Expected ErrUnknownPalette, got %v", err)
	}
}

func TestNames_Sorted(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("Expected at least one palette")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names not sorted: %q before %q", names[i-1], names[i])
		}
	}

	found := false
	for _, n := range names {
		if n == "glass" {
			found = true
		}
	}
	if !found {
		t.Error("Expected glass palette in Names()")
	}
}

func TestResolve_Random(t *testing.T) {
	a, err := Resolve(RandomName, 42)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	b, err := Resolve(RandomName, 42)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("Random palettes differ in length: %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Random palette not deterministic at index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestGenerateHSV(t *testing.T) {
	p := GenerateHSV(7, 5)
	if len(p) != 5 {
		t.Fatalf("Expected 5 colors, got %d", len(p))
	}
	for i, c := range p {
		if c.A != 255 {
			t.Errorf("Color %d not opaque", i)
		}
	}

	q := GenerateHSV(8, 5)
	same := true
	for i := range p {
		if p[i] != q[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected different seeds to produce different palettes")
	}
}
