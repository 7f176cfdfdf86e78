// Package render turns a payload and a caption into a QR code whose modules
// are recoloured so the caption shows through the dot pattern.
//
// The pipeline has three stages: MakeMatrix builds the module grid,
// MakeInkMask rasterizes and dilates the caption, and Compose paints each
// module with ModuleColor. Generate runs all three and encodes a PNG.
package render

import (
	"bytes"
	"fmt"
	"image"
)

// Result is a finished render.
type Result struct {
	PNG   []byte
	Image *image.RGBA

	// Version is the QR version actually used.
	Version    int
	Dimension  int
	ModuleSize int
	FontSize   int
}

// Size returns the canvas side in pixels.
func (r Result) Size() int { return r.Dimension * r.ModuleSize }

// Generate renders cfg with f. It returns either a complete Result or an
// error; no partial image is produced.
func Generate(f *Font, cfg Config) (Result, error) {
	if f == nil {
		return Result{}, fmt.Errorf("%w: no font loaded", ErrAsset)
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	matrix, version, err := MakeMatrix(cfg.Payload, cfg.Version)
	if err != nil {
		return Result{}, err
	}
	dimension := matrix.Dimension()
	moduleSize := ModuleSize(dimension)

	mask, fontSize, err := MakeInkMask(f, dimension*moduleSize, moduleSize, cfg.Caption, cfg.Position)
	if err != nil {
		return Result{}, err
	}

	dc := composeContext(matrix, mask, moduleSize, cfg.Accent)
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return Result{}, fmt.Errorf("encode png: %w", err)
	}

	return Result{
		PNG:        buf.Bytes(),
		Image:      dc.Image().(*image.RGBA),
		Version:    version,
		Dimension:  dimension,
		ModuleSize: moduleSize,
		FontSize:   fontSize,
	}, nil
}
