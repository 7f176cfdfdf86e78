package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenterSquare returns the largest square that fits into rect, centered on
// both axes.
func CenterSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	x := rect.Min.X + (rect.Dx()-size)/2
	y := rect.Min.Y + (rect.Dy()-size)/2
	return image.Rect(x, y, x+size, y+size)
}

// FractionY returns the row at fraction of rect's height, truncated.
func FractionY(rect image.Rectangle, fraction float64) int {
	rect = Normalize(rect)
	return rect.Min.Y + int(float64(rect.Dy())*fraction)
}

// CenteredTop returns the row at which a box of height boxHeight starts when
// vertically centered in rect.
func CenteredTop(rect image.Rectangle, boxHeight int) int {
	rect = Normalize(rect)
	return rect.Min.Y + (rect.Dy()-boxHeight)/2
}

// PenOrigin returns the pen position for text whose inked bounds, relative
// to the pen, are glyph. The ink is horizontally centered in rect and its
// top edge lands on top. Subtracting the glyph offsets centers what is
// visible rather than the advance box.
func PenOrigin(rect image.Rectangle, glyph image.Rectangle, top int) image.Point {
	rect = Normalize(rect)
	x := rect.Min.X + (rect.Dx()-glyph.Dx())/2 - glyph.Min.X
	return image.Pt(x, top-glyph.Min.Y)
}
