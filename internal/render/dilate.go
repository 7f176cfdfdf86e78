package render

import (
	"image"

	"github.com/disintegration/gift"
)

// DilationRadius grows with the module size so coarse grids, which sample
// the mask at fewer points, still hit thin strokes.
func DilationRadius(moduleSize int) int {
	return max(3, moduleSize/4)
}

// maxFilter returns src with every pixel replaced by the largest value in
// the (2r+1)x(2r+1) square around it. The window is clipped at the edges.
func maxFilter(src image.Image, r int) *image.Gray {
	g := gift.New()
	if r > 0 {
		g.Add(gift.Maximum(2*r+1, false))
	}
	dst := image.NewGray(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}

// thresholdMask marks pixels brighter than threshold as ink.
func thresholdMask(img *image.Gray, threshold uint8) *InkMask {
	b := img.Bounds()
	out := NewInkMask(b.Dx(), b.Dy())
	for y := 0; y < out.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+out.Width]
		for x, v := range row {
			out.ink[y*out.Width+x] = v > threshold
		}
	}
	return out
}
