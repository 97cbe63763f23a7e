package sprite

import (
	"image"
	"image/color"

	"github.com/MeKo-Tech/pixsynth/internal/noise"
	"github.com/MeKo-Tech/pixsynth/internal/palette"
	"github.com/MeKo-Tech/pixsynth/internal/silhouette"
	"github.com/MeKo-Tech/pixsynth/internal/style"
)

// itemPalettes assigns each silhouette kind its default color ramp.
var itemPalettes = map[string]string{
	"bottle":   "glass",
	"flask":    "glass",
	"can":      "metal",
	"seed":     "seed",
	"crop":     "crop_green",
	"berry":    "berry",
	"herb":     "herb",
	"mushroom": "mushroom",
}

var backgroundColor = color.RGBA{A: 255}

// renderItem draws one silhouetted item frame: fractal noise mapped
// through the item's ramp, shaded, outlined, and masked to a black
// background.
func renderItem(size int, kind, paletteName string, baseSeed, frameSeed int64) (*image.RGBA, error) {
	mask, err := silhouette.Lookup(kind, size)
	if err != nil {
		return nil, err
	}

	if paletteName == "" {
		paletteName = itemPalettes[kind]
	}
	// The palette is resolved against the base seed, not the frame seed,
	// so every frame of an animation shares one ramp.
	ramp, err := palette.Resolve(paletteName, baseSeed)
	if err != nil {
		return nil, err
	}

	field, err := noise.FBM(size, size, noise.FBMParams{
		BaseScale:   8.0,
		Octaves:     3,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}, frameSeed)
	if err != nil {
		return nil, err
	}

	img := palette.Apply(field, ramp)
	style.VerticalShade(img, 0.25)
	style.Outline(img, mask)
	style.MaskBackground(img, mask, backgroundColor)
	return img, nil
}
