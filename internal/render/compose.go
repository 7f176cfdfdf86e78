package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

const (
	targetCanvasSize = 800
	minModuleSize    = 10
)

// ModuleSize returns the pixel size of one module for a matrix with
// dimension modules per side. Large codes get smaller modules, never below
// minModuleSize.
func ModuleSize(dimension int) int {
	if dimension <= 0 {
		return minModuleSize
	}
	return max(minModuleSize, targetCanvasSize/dimension)
}

// CornerRadius is the rounding applied to dark modules.
func CornerRadius(moduleSize int) int {
	return max(1, moduleSize/4)
}

// ModuleCenter returns the pixel sampled from the ink mask for the module
// at (row, col).
func ModuleCenter(row, col, moduleSize int) image.Point {
	return image.Pt(col*moduleSize+moduleSize/2, row*moduleSize+moduleSize/2)
}

// Compose paints m onto a white canvas of m.Dimension()*moduleSize pixels.
// Each module samples mask once at its centre and is coloured by
// ModuleColor. Light modules outside the caption stay as background.
func Compose(m Matrix, mask *InkMask, moduleSize int, accent color.RGBA) *image.RGBA {
	return composeContext(m, mask, moduleSize, accent).Image().(*image.RGBA)
}

func composeContext(m Matrix, mask *InkMask, moduleSize int, accent color.RGBA) *gg.Context {
	size := m.Dimension() * moduleSize
	dc := gg.NewContext(size, size)
	dc.SetColor(White)
	dc.Clear()

	side := float64(moduleSize)
	radius := float64(CornerRadius(moduleSize))
	for row, modules := range m {
		for col, on := range modules {
			center := ModuleCenter(row, col, moduleSize)
			ink := mask != nil && mask.At(center.X, center.Y)
			if !on && !ink {
				continue
			}

			x0 := float64(col * moduleSize)
			y0 := float64(row * moduleSize)
			dc.SetColor(ModuleColor(on, ink, accent))
			if on {
				dc.DrawRoundedRectangle(x0, y0, side, side, radius)
			} else {
				dc.DrawRectangle(x0, y0, side, side)
			}
			dc.Fill()
		}
	}
	return dc
}
