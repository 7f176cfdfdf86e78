package render

import (
	"fmt"
	"image"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FontBackend names the library used to rasterize caption glyphs.
type FontBackend string

const (
	BackendOpenType FontBackend = "opentype"
	BackendFreeType FontBackend = "freetype"
)

// ParseFontBackend maps a config value to a FontBackend. Empty means opentype.
func ParseFontBackend(s string) (FontBackend, error) {
	switch FontBackend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendOpenType:
		return BackendOpenType, nil
	case BackendFreeType:
		return BackendFreeType, nil
	default:
		return "", fmt.Errorf("unknown font backend %q", s)
	}
}

// Font is a parsed font shared by all renders. It is never mutated after
// LoadFont returns; every measurement builds its own face.
type Font struct {
	backend FontBackend
	ot      *opentype.Font
	tt      *truetype.Font
}

// LoadFont parses data with the given backend. Failures wrap ErrAsset.
func LoadFont(data []byte, backend FontBackend) (*Font, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font data", ErrAsset)
	}
	f := &Font{backend: backend}
	switch backend {
	case BackendOpenType, "":
		f.backend = BackendOpenType
		ot, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%w: opentype parse: %v", ErrAsset, err)
		}
		f.ot = ot
	case BackendFreeType:
		tt, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%w: truetype parse: %v", ErrAsset, err)
		}
		f.tt = tt
	default:
		return nil, fmt.Errorf("%w: unknown font backend %q", ErrAsset, backend)
	}
	return f, nil
}

// Backend reports which library parsed the font.
func (f *Font) Backend() FontBackend { return f.backend }

// Face returns a new face at size pixels (72 DPI). Hinting is disabled so
// glyph extents grow with the size instead of snapping to the pixel grid.
// The caller closes the face.
func (f *Font) Face(size int) (font.Face, error) {
	switch f.backend {
	case BackendFreeType:
		return truetype.NewFace(f.tt, &truetype.Options{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingNone,
		}), nil
	default:
		face, err := opentype.NewFace(f.ot, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: face at %dpx: %v", ErrAsset, size, err)
		}
		return face, nil
	}
}

// Measure returns the inked bounds of text at size pixels, relative to the
// pen origin on the baseline. Min is floored and Max is ceiled so the box
// covers every touched pixel.
func (f *Font) Measure(text string, size int) (image.Rectangle, error) {
	face, err := f.Face(size)
	if err != nil {
		return image.Rectangle{}, err
	}
	defer face.Close()
	return glyphBox(face, text), nil
}

func glyphBox(face font.Face, text string) image.Rectangle {
	bounds, _ := font.BoundString(face, text)
	return image.Rect(
		bounds.Min.X.Floor(), bounds.Min.Y.Floor(),
		bounds.Max.X.Ceil(), bounds.Max.Y.Ceil(),
	)
}
