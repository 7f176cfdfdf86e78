package render

import (
	"image/color"
	"math"
)

var (
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Share of white in the tint painted on light modules under the caption.
// It has to stay light enough for scanners to read the module as off.
const tintWhiteShare = 0.65

// Tint mixes accent into white: round(255*0.65 + c*0.35) per channel.
func Tint(accent color.RGBA) color.RGBA {
	mix := func(c uint8) uint8 {
		return uint8(math.Round(255*tintWhiteShare + float64(c)*(1-tintWhiteShare)))
	}
	return color.RGBA{R: mix(accent.R), G: mix(accent.G), B: mix(accent.B), A: 0xFF}
}

// ModuleColor is the four-colour rule:
//
//	on,  ink    -> accent
//	on,  no ink -> black
//	off, ink    -> Tint(accent)
//	off, no ink -> white
func ModuleColor(on, ink bool, accent color.RGBA) color.RGBA {
	switch {
	case on && ink:
		return color.RGBA{R: accent.R, G: accent.G, B: accent.B, A: 0xFF}
	case on:
		return Black
	case ink:
		return Tint(accent)
	default:
		return White
	}
}
