//go:build !linux

package display

import (
	"context"
	"image"

	"github.com/rook-computer/inkqr/internal/logging"
)

func Show(ctx context.Context, device string, img image.Image, logger logging.Logger) error {
	return ErrUnsupported
}
