package render

import "image"

func (m *InkMask) set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.ink[y*m.Width+x] = v
}

func (m *InkMask) count() int {
	n := 0
	for _, v := range m.ink {
		if v {
			n++
		}
	}
	return n
}

// bounds is the smallest rectangle holding every inked pixel.
func (m *InkMask) bounds() image.Rectangle {
	var r image.Rectangle
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.ink[y*m.Width+x] {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

// dilate grows a boolean mask by a (2r+1)x(2r+1) square.
func dilate(m *InkMask, r int) *InkMask {
	src := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for i, v := range m.ink {
		if v {
			src.Pix[i] = 0xFF
		}
	}
	return thresholdMask(maxFilter(src, r), inkThreshold)
}
