//go:build linux

package display

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"time"

	fb "github.com/gonutz/framebuffer"

	"github.com/rook-computer/inkqr/internal/logging"
	"github.com/rook-computer/inkqr/internal/system"
)

// Redraw interval. Other writers to the framebuffer get painted over.
const redrawEvery = time.Second

// Show draws img on device until ctx is done or an exit key is pressed.
// The console is put into graphics mode for the duration and restored on
// return.
func Show(ctx context.Context, device string, img image.Image, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	dev, err := fb.Open(device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", device, err)
	}
	defer dev.Close()

	bounds := dev.Bounds()
	logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	_ = system.SetGraphicsModeWithLog(logger)
	_ = system.HideCursorWithLog(logger)
	defer func() {
		_ = system.ShowCursorWithLog(logger)
		_ = system.RestoreTextModeWithLog(logger)
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	system.StartExitOnKeys(ctx, logger, system.DefaultExitKeys, cancel)

	frame := Frame(bounds.Size(), img, Padding(bounds.Size()))
	blit(dev, frame)

	ticker := time.NewTicker(redrawEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Infof("fb", "display closed")
			return nil
		case <-ticker.C:
			blit(dev, frame)
		}
	}
}

func blit(dev *fb.Device, frame *image.RGBA) {
	b := dev.Bounds()
	draw.Draw(dev, b, frame, image.Point{}, draw.Src)
}
