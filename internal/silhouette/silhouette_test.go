package silhouette

import (
	"errors"
	"testing"
)

func TestLookup_AllShapes(t *testing.T) {
	for _, name := range Names() {
		m, err := Lookup(name, 16)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", name, err)
		}
		if m.W != 16 || m.H != 16 {
			t.Errorf("Lookup(%q) returned %dx%d, want 16x16", name, m.W, m.H)
		}
		if m.Count() == 0 {
			t.Errorf("Lookup(%q) produced an empty mask", name)
		}
		if m.Count() == 16*16 {
			t.Errorf("Lookup(%q) produced a full-canvas mask", name)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("sword", 16)
	if !errors.Is(err, ErrUnknownShape) {
		t.Errorf("Expected ErrUnknownShape, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"berry", "bottle", "can", "crop", "flask", "herb", "mushroom", "seed"}
	if len(names) != len(want) {
		t.Fatalf("Expected %d shapes, got %d: %v", len(want), len(names), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestCan_Rectangle(t *testing.T) {
	m := Can(20)

	// Rows span 0.1..0.9 of the height, columns 0.25..0.75 of the width.
	if !m.At(10, 10) {
		t.Error("Expected center pixel on")
	}
	if m.At(0, 10) {
		t.Error("Expected left margin off")
	}
	if m.At(10, 0) {
		t.Error("Expected top margin off")
	}
	if m.At(10, 19) {
		t.Error("Expected bottom margin off")
	}
}

func TestBottle_NarrowNeck(t *testing.T) {
	m := Bottle(32)

	neckRow, baseRow := 2, 28
	neckCount, baseCount := 0, 0
	for x := 0; x < m.W; x++ {
		if m.At(x, neckRow) {
			neckCount++
		}
		if m.At(x, baseRow) {
			baseCount++
		}
	}

	if neckCount == 0 {
		t.Fatal("Expected neck row to have on pixels")
	}
	if neckCount >= baseCount {
		t.Errorf("Expected neck (%d) narrower than base (%d)", neckCount, baseCount)
	}
}

func TestMask_SetAt(t *testing.T) {
	m := NewMask(4, 4)
	if m.Count() != 0 {
		t.Fatal("New mask should start empty")
	}

	m.Set(2, 3, true)
	if !m.At(2, 3) {
		t.Error("Expected pixel set")
	}
	if m.Count() != 1 {
		t.Errorf("Expected count 1, got %d", m.Count())
	}
}
