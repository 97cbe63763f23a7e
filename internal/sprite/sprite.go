// Package sprite renders procedural pixel-art textures: silhouetted item
// sprites, material swatches, and vertical animation sheets.
package sprite

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/MeKo-Tech/pixsynth/internal/rng"
)

// ErrUnknownKind is returned for item/material keys with no renderer.
// Unrecognized keys are rejected outright instead of falling back to a
// default palette or shape.
var ErrUnknownKind = errors.New("unknown texture kind")

// Seed derivation constants. Frame i renders with seed base+i*frameSeedStep
// (frame 0 equals the base seed, so a one-frame render matches the first
// sheet rows); jitter draws from frameSeed+jitterSeedOffset so pixel
// jitter never consumes the structural noise stream.
const (
	frameSeedStep    = 1013
	jitterSeedOffset = 101
)

// Config describes one texture generation request. Frames below 1 are
// coerced to 1. A nil Seed self-seeds from OS entropy.
type Config struct {
	Size    int
	Kind    string
	Frames  int
	Palette string
	Seed    *int64
}

// Kinds returns all renderable item and material keys, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(itemPalettes)+len(materialNames))
	for kind := range itemPalettes {
		kinds = append(kinds, kind)
	}
	kinds = append(kinds, materialNames...)
	sort.Strings(kinds)
	return kinds
}

// Generate renders the texture described by cfg: a single size x size
// frame, or a vertical sheet of height size*frames when cfg.Frames > 1.
func Generate(cfg Config) (*image.RGBA, error) {
	frames, err := Frames(cfg)
	if err != nil {
		return nil, err
	}
	return Assemble(frames), nil
}

// Frames renders the individual animation frames for cfg. Frame i uses
// the deterministic seed base + i*frameSeedStep.
func Frames(cfg Config) ([]*image.RGBA, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("texture size must be positive, got %d", cfg.Size)
	}
	count := cfg.Frames
	if count < 1 {
		count = 1
	}

	base := rng.Resolve(cfg.Seed)

	frames := make([]*image.RGBA, count)
	for i := 0; i < count; i++ {
		frameSeed := base + int64(i)*frameSeedStep
		frame, err := renderFrame(cfg.Size, cfg.Kind, cfg.Palette, base, frameSeed)
		if err != nil {
			return nil, err
		}
		frames[i] = frame
	}
	return frames, nil
}

func renderFrame(size int, kind, paletteName string, baseSeed, frameSeed int64) (*image.RGBA, error) {
	if _, ok := itemPalettes[kind]; ok {
		return renderItem(size, kind, paletteName, baseSeed, frameSeed)
	}
	if isMaterial(kind) {
		return renderMaterial(size, kind, frameSeed)
	}
	return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownKind, kind, Kinds())
}
