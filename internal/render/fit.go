package render

const (
	MinFontSize = 8
	MaxFontSize = 400

	// CaptionWidthRatio caps the caption width relative to the canvas.
	CaptionWidthRatio = 0.60
)

// CaptionWidthLimit is the widest glyph box allowed on a canvas of size px.
func CaptionWidthLimit(canvasSize int) int {
	return int(float64(canvasSize) * CaptionWidthRatio)
}

// FitFontSize finds the largest size in [MinFontSize, MaxFontSize] whose
// glyph box for caption is at most maxWidth pixels wide. Each probe measures
// a freshly built face; glyph width is only assumed to grow with size, not
// to scale linearly. When nothing fits, MinFontSize is returned.
func FitFontSize(f *Font, caption string, maxWidth int) (int, error) {
	lo, hi := MinFontSize, MaxFontSize
	best := lo
	for lo <= hi {
		mid := (lo + hi) / 2
		box, err := f.Measure(caption, mid)
		if err != nil {
			return 0, err
		}
		if box.Dx() <= maxWidth {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best, nil
}
