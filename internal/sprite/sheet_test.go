package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssemble_Empty(t *testing.T) {
	require.Nil(t, Assemble(nil))
	require.Nil(t, Assemble([]*image.RGBA{}))
}

func TestAssemble_SingleFramePassthrough(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 8, 8))
	require.Same(t, frame, Assemble([]*image.RGBA{frame}))
}

func TestAssemble_StacksVertically(t *testing.T) {
	frames := make([]*image.RGBA, 3)
	for i := range frames {
		frames[i] = image.NewRGBA(image.Rect(0, 0, 8, 8))
		frames[i].SetRGBA(2, 3, color.RGBA{R: uint8(50 * (i + 1)), A: 255})
	}

	sheet := Assemble(frames)
	require.Equal(t, 8, sheet.Bounds().Dx())
	require.Equal(t, 24, sheet.Bounds().Dy())

	for i := range frames {
		want := color.RGBA{R: uint8(50 * (i + 1)), A: 255}
		require.Equal(t, want, sheet.RGBAAt(2, i*8+3), "frame %d marker", i)
	}
}
