// Package display shows a rendered code full screen on a Linux framebuffer.
package display

import (
	"errors"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/inkqr/internal/render"
	"github.com/rook-computer/inkqr/internal/render/layout"
)

// ErrUnsupported is returned by Show on platforms without a framebuffer.
var ErrUnsupported = errors.New("framebuffer display is only supported on linux")

// PaddingFraction of the short screen side is kept white around the code.
const PaddingFraction = 0.05

// Frame lays img out on a white screen of the given size: the largest
// centered square minus padding, scaled with nearest neighbour so module
// edges stay sharp.
func Frame(size image.Point, img image.Image, padding int) *image.RGBA {
	screen := image.Rect(0, 0, size.X, size.Y)
	out := image.NewRGBA(screen)
	draw.Draw(out, screen, image.NewUniform(render.White), image.Point{}, draw.Src)
	if img == nil {
		return out
	}

	dst := layout.Inset(layout.CenterSquare(screen), padding)
	if dst.Empty() {
		return out
	}
	xdraw.NearestNeighbor.Scale(out, dst, img, img.Bounds(), xdraw.Src, nil)
	return out
}

// Padding returns the margin for a screen of the given size.
func Padding(size image.Point) int {
	short := size.X
	if size.Y < short {
		short = size.Y
	}
	return int(float64(short) * PaddingFraction)
}
