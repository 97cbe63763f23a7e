package sprite

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Assemble stacks frames top to bottom into one vertical sheet. A single
// frame is returned as-is, no frames as nil. All frames must share the
// first frame's dimensions.
func Assemble(frames []*image.RGBA) *image.RGBA {
	if len(frames) == 0 {
		return nil
	}
	if len(frames) == 1 {
		return frames[0]
	}

	w := frames[0].Bounds().Dx()
	h := frames[0].Bounds().Dy()
	sheet := image.NewRGBA(image.Rect(0, 0, w, h*len(frames)))

	for i, frame := range frames {
		xdraw.Copy(sheet, image.Pt(0, i*h), frame, frame.Bounds(), xdraw.Src, nil)
	}
	return sheet
}
