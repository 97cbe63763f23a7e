package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/MeKo-Tech/pixsynth/internal/noise"
	"github.com/MeKo-Tech/pixsynth/internal/palette"
	"github.com/MeKo-Tech/pixsynth/internal/style"
)

// materialNames lists the material presets in render order.
var materialNames = []string{"beer", "red_wine", "mead", "foam", "wood", "copper"}

func isMaterial(kind string) bool {
	for _, name := range materialNames {
		if name == kind {
			return true
		}
	}
	return false
}

// renderMaterial draws one maskless material swatch. Each preset fixes
// its own noise parameters and stylization chain.
func renderMaterial(size int, material string, frameSeed int64) (*image.RGBA, error) {
	jitterSeed := frameSeed + jitterSeedOffset

	switch material {
	case "beer", "red_wine", "mead":
		field, err := noise.FBM(size, size, noise.FBMParams{
			BaseScale: 6.0, Octaves: 3, Persistence: 0.55, Lacunarity: 2.0,
		}, frameSeed)
		if err != nil {
			return nil, err
		}
		// Bias toward the dark end so the liquid reads as translucent.
		field.Pow(1.15)

		ramp, err := palette.Lookup(material)
		if err != nil {
			return nil, err
		}
		img := palette.Apply(field, ramp)
		style.VerticalShade(img, 0.25)
		style.Jitter(img, 5, jitterSeed)
		style.EdgeHighlight(img, style.SideTop, 0.3)
		return img, nil

	case "foam":
		field, err := noise.FBM(size, size, noise.FBMParams{
			BaseScale: 4.0, Octaves: 4, Persistence: 0.6, Lacunarity: 2.0,
		}, frameSeed)
		if err != nil {
			return nil, err
		}

		ramp, err := palette.Lookup("foam")
		if err != nil {
			return nil, err
		}
		img := palette.Apply(field, ramp)
		dimBubbleGaps(img, field, 0.55)
		style.Jitter(img, 4, jitterSeed)
		style.EdgeHighlight(img, style.SideTop, 0.25)
		return img, nil

	case "wood":
		field, err := noise.FBM(size, size, noise.FBMParams{
			BaseScale: 6.0, Octaves: 4, Persistence: 0.55, Lacunarity: 2.0,
		}, frameSeed)
		if err != nil {
			return nil, err
		}
		blendGrowthRings(field)

		ramp, err := palette.Lookup("wood")
		if err != nil {
			return nil, err
		}
		img := palette.Apply(field, ramp)
		style.VerticalShade(img, 0.3)
		style.Jitter(img, 6, jitterSeed)
		style.SurfaceGrain(img, 3.0, 0.15, frameSeed)
		return img, nil

	case "copper":
		field, err := noise.FBM(size, size, noise.FBMParams{
			BaseScale: 5.0, Octaves: 3, Persistence: 0.5, Lacunarity: 2.0,
		}, frameSeed)
		if err != nil {
			return nil, err
		}

		ramp, err := palette.Lookup("copper")
		if err != nil {
			return nil, err
		}
		img := palette.Apply(field, ramp)
		style.VerticalShade(img, 0.2)
		style.Jitter(img, 5, jitterSeed)
		style.SurfaceGrain(img, 5.0, 0.12, frameSeed)
		return img, nil
	}

	return nil, ErrUnknownKind
}

// dimBubbleGaps darkens pixels below the bubble threshold so only noise
// peaks keep the bright foam colors.
func dimBubbleGaps(img *image.RGBA, field *noise.Field, threshold float64) {
	const gapAlpha = 0.3
	gap := color.RGBA{
		R: uint8(220 * gapAlpha),
		G: uint8(220 * gapAlpha),
		B: uint8(220 * gapAlpha),
		A: 255,
	}
	b := img.Bounds()
	for y := 0; y < field.H; y++ {
		for x := 0; x < field.W; x++ {
			if field.At(x, y) <= threshold {
				img.SetRGBA(b.Min.X+x, b.Min.Y+y, gap)
			}
		}
	}
}

// blendGrowthRings mixes a sinusoidal ring pattern into the field. The
// ring phase is driven by each column's mean noise, so rings waver with
// the underlying grain.
func blendGrowthRings(field *noise.Field) {
	colMean := make([]float64, field.W)
	for x := 0; x < field.W; x++ {
		sum := 0.0
		for y := 0; y < field.H; y++ {
			sum += field.At(x, y)
		}
		colMean[x] = sum / float64(field.H)
	}

	rings := make([]float64, field.W)
	for x := 0; x < field.W; x++ {
		t := 0.0
		if field.W > 1 {
			t = float64(x) / float64(field.W-1)
		}
		rings[x] = (math.Sin(t*math.Pi*3+colMean[x]*2*math.Pi) + 1) * 0.5
	}

	for y := 0; y < field.H; y++ {
		for x := 0; x < field.W; x++ {
			field.Set(x, y, field.At(x, y)*0.5+rings[x]*0.5)
		}
	}
}
