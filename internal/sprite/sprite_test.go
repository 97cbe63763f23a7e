package sprite

import (
	"testing"

	"github.com/MeKo-Tech/pixsynth/internal/palette"
	"github.com/stretchr/testify/require"
)

func seedOf(v int64) *int64 { return &v }

func TestGenerate_SheetDimensions(t *testing.T) {
	img, err := Generate(Config{Size: 16, Kind: "bottle", Frames: 3, Seed: seedOf(42)})
	require.NoError(t, err)

	b := img.Bounds()
	require.Equal(t, 16, b.Dx())
	require.Equal(t, 48, b.Dy())
}

func TestGenerate_SingleFrameMatchesSheetTop(t *testing.T) {
	single, err := Generate(Config{Size: 16, Kind: "bottle", Frames: 1, Seed: seedOf(42)})
	require.NoError(t, err)

	sheet, err := Generate(Config{Size: 16, Kind: "bottle", Frames: 3, Seed: seedOf(42)})
	require.NoError(t, err)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			require.Equal(t, single.RGBAAt(x, y), sheet.RGBAAt(x, y),
				"pixel (%d,%d) of frame 0 differs from sheet", x, y)
		}
	}
}

func TestGenerate_FramesDiffer(t *testing.T) {
	sheet, err := Generate(Config{Size: 16, Kind: "beer", Frames: 2, Seed: seedOf(42)})
	require.NoError(t, err)

	same := true
	for y := 0; y < 16 && same; y++ {
		for x := 0; x < 16; x++ {
			if sheet.RGBAAt(x, y) != sheet.RGBAAt(x, y+16) {
				same = false
				break
			}
		}
	}
	require.False(t, same, "expected consecutive frames to differ")
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, kind := range []string{"bottle", "seed", "beer", "wood"} {
		a, err := Generate(Config{Size: 16, Kind: kind, Frames: 2, Seed: seedOf(7)})
		require.NoError(t, err, kind)
		b, err := Generate(Config{Size: 16, Kind: kind, Frames: 2, Seed: seedOf(7)})
		require.NoError(t, err, kind)
		require.Equal(t, a.Pix, b.Pix, "kind %q not deterministic", kind)
	}
}

func TestGenerate_AllKinds(t *testing.T) {
	for _, kind := range Kinds() {
		img, err := Generate(Config{Size: 16, Kind: kind, Frames: 1, Seed: seedOf(3)})
		require.NoError(t, err, kind)
		require.Equal(t, 16, img.Bounds().Dx(), kind)
		require.Equal(t, 16, img.Bounds().Dy(), kind)
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	_, err := Generate(Config{Size: 16, Kind: "sword", Frames: 1, Seed: seedOf(1)})
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestGenerate_UnknownPalette(t *testing.T) {
	_, err := Generate(Config{Size: 16, Kind: "bottle", Palette: "neon", Frames: 1, Seed: seedOf(1)})
	require.ErrorIs(t, err, palette.ErrUnknownPalette)
}

func TestGenerate_InvalidSize(t *testing.T) {
	_, err := Generate(Config{Size: 0, Kind: "bottle", Frames: 1, Seed: seedOf(1)})
	require.Error(t, err)
}

func TestGenerate_FramesCoerced(t *testing.T) {
	img, err := Generate(Config{Size: 16, Kind: "can", Frames: 0, Seed: seedOf(5)})
	require.NoError(t, err)
	require.Equal(t, 16, img.Bounds().Dy())

	img, err = Generate(Config{Size: 16, Kind: "can", Frames: -3, Seed: seedOf(5)})
	require.NoError(t, err)
	require.Equal(t, 16, img.Bounds().Dy())
}

func TestGenerate_RandomPalette(t *testing.T) {
	a, err := Generate(Config{Size: 16, Kind: "bottle", Palette: palette.RandomName, Frames: 1, Seed: seedOf(9)})
	require.NoError(t, err)
	b, err := Generate(Config{Size: 16, Kind: "bottle", Palette: palette.RandomName, Frames: 1, Seed: seedOf(9)})
	require.NoError(t, err)
	require.Equal(t, a.Pix, b.Pix, "random palette should be deterministic per seed")
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	require.Contains(t, kinds, "bottle")
	require.Contains(t, kinds, "beer")
	require.Contains(t, kinds, "wood")
	require.IsIncreasing(t, kinds)
}

func TestFrames_Count(t *testing.T) {
	frames, err := Frames(Config{Size: 8, Kind: "berry", Frames: 4, Seed: seedOf(11)})
	require.NoError(t, err)
	require.Len(t, frames, 4)
	for _, f := range frames {
		require.Equal(t, 8, f.Bounds().Dx())
		require.Equal(t, 8, f.Bounds().Dy())
	}
}
