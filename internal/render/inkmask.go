package render

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/inkqr/internal/render/layout"
)

const (
	// Caption top edge for the top and bottom positions, as a fraction of
	// canvas height.
	topCaptionFraction    = 0.15
	bottomCaptionFraction = 0.70

	// Glyph coverage above this value (out of 255) counts as ink.
	inkThreshold = 128
)

// InkMask is a boolean field at canvas resolution marking caption ink.
type InkMask struct {
	Width, Height int
	ink           []bool
}

// NewInkMask returns an empty mask of the given size.
func NewInkMask(width, height int) *InkMask {
	return &InkMask{Width: width, Height: height, ink: make([]bool, width*height)}
}

// At reports whether (x, y) is inked. Points outside the mask are not.
func (m *InkMask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.ink[y*m.Width+x]
}

// captionTop returns the row where the caption's ink starts.
func captionTop(canvas image.Rectangle, glyph image.Rectangle, pos Position) int {
	switch pos {
	case PositionTop:
		return layout.FractionY(canvas, topCaptionFraction)
	case PositionBottom:
		return layout.FractionY(canvas, bottomCaptionFraction)
	default:
		return layout.CenteredTop(canvas, glyph.Dy())
	}
}

// MakeInkMask renders caption on a canvasSize square at the largest font
// size that keeps it within CaptionWidthLimit, then dilates the strokes by
// DilationRadius(moduleSize). It returns the mask and the font size used.
func MakeInkMask(f *Font, canvasSize, moduleSize int, caption string, pos Position) (*InkMask, int, error) {
	if caption == "" {
		return nil, 0, fmt.Errorf("%w: caption is empty", ErrValidation)
	}

	size, err := FitFontSize(f, caption, CaptionWidthLimit(canvasSize))
	if err != nil {
		return nil, 0, err
	}
	face, err := f.Face(size)
	if err != nil {
		return nil, 0, err
	}
	defer face.Close()

	canvas := image.Rect(0, 0, canvasSize, canvasSize)
	glyph := glyphBox(face, caption)
	pen := layout.PenOrigin(canvas, glyph, captionTop(canvas, glyph, pos))

	coverage := image.NewAlpha(canvas)
	drawer := &font.Drawer{
		Dst:  coverage,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(pen.X, pen.Y),
	}
	drawer.DrawString(caption)

	// Max filter then threshold, which equals dilating the thresholded
	// strokes.
	gray := &image.Gray{Pix: coverage.Pix, Stride: coverage.Stride, Rect: coverage.Rect}
	dilated := maxFilter(gray, DilationRadius(moduleSize))
	return thresholdMask(dilated, inkThreshold), size, nil
}
