package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Position selects where the caption sits on the code.
type Position string

const (
	PositionTop    Position = "top"
	PositionCenter Position = "center"
	PositionBottom Position = "bottom"
)

// AutoVersion lets the matrix generator choose the smallest fitting version.
const AutoVersion = 0

// DefaultAccent is the accent used when callers do not pick one (#DC3232).
var DefaultAccent = color.RGBA{R: 0xDC, G: 0x32, B: 0x32, A: 0xFF}

// ParsePosition maps a user supplied name to a Position. An empty string
// means center.
func ParsePosition(s string) (Position, error) {
	switch Position(strings.ToLower(strings.TrimSpace(s))) {
	case "", PositionCenter:
		return PositionCenter, nil
	case PositionTop:
		return PositionTop, nil
	case PositionBottom:
		return PositionBottom, nil
	default:
		return "", fmt.Errorf("%w: unknown caption position %q", ErrValidation, s)
	}
}

// ParseHexColor parses "#RRGGBB", "RRGGBB" or the "#RGB" shorthand into an
// opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: colour %q is not #RRGGBB", ErrValidation, s)
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: colour %q is not #RRGGBB", ErrValidation, s)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}, nil
}

// HexColor formats c as "#rrggbb".
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseVersion accepts "auto", "" or an integer in [1, 40].
func ParseVersion(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "auto" {
		return AutoVersion, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > MaxVersion {
		return 0, fmt.Errorf("%w: version must be auto or 1-%d (got %q)", ErrValidation, MaxVersion, s)
	}
	return v, nil
}

// Config describes a single render. It is built once per request and not
// modified afterwards.
type Config struct {
	Payload  string
	Caption  string
	Accent   color.RGBA
	Position Position

	// Version is AutoVersion or an explicit QR version in [1, 40].
	Version int
}

// Validate checks the fields the pipeline cannot recover from.
func (c Config) Validate() error {
	if c.Payload == "" {
		return fmt.Errorf("%w: payload is empty", ErrValidation)
	}
	if c.Caption == "" {
		return fmt.Errorf("%w: caption is empty", ErrValidation)
	}
	switch c.Position {
	case PositionTop, PositionCenter, PositionBottom:
	default:
		return fmt.Errorf("%w: unknown caption position %q", ErrValidation, c.Position)
	}
	if c.Version < AutoVersion || c.Version > MaxVersion {
		return fmt.Errorf("%w: version %d out of range [1, %d]", ErrValidation, c.Version, MaxVersion)
	}
	return nil
}
