//go:build linux

// Package system wraps the Linux console and input devices the framebuffer
// display needs.
package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/inkqr/internal/logging"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// Candidate consoles: the controlling VT first, then the active one.
var consolePaths = []string{"/dev/tty", "/dev/tty0"}

// setConsoleMode issues KDSETMODE on the first console that accepts it.
func setConsoleMode(mode int) error {
	var lastErr error
	for _, p := range consolePaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("KDSETMODE %d failed: no console", mode)
}

// SetGraphicsMode switches the console to graphics mode so the kernel stops
// drawing text and the cursor over the framebuffer.
func SetGraphicsMode() error { return setConsoleMode(kdGraphics) }

// RestoreTextMode gives the console back to the kernel text renderer.
func RestoreTextMode() error { return setConsoleMode(kdText) }

// HideCursor writes the ANSI escape to hide the cursor to the active VT.
func HideCursor() error { return writeVT("\x1b[?25l") }
func ShowCursor() error { return writeVT("\x1b[?25h") }

// withLog runs op and reports the outcome under the tty component.
func withLog(l logging.Logger, what string, op func() error) error {
	err := op()
	if l == nil {
		return err
	}
	if err != nil {
		l.Errorf("tty", "%s failed: %v", what, err)
	} else {
		l.Infof("tty", "%s done", what)
	}
	return err
}

func SetGraphicsModeWithLog(l logging.Logger) error {
	return withLog(l, "KD_GRAPHICS", SetGraphicsMode)
}

func RestoreTextModeWithLog(l logging.Logger) error {
	return withLog(l, "KD_TEXT", RestoreTextMode)
}

func HideCursorWithLog(l logging.Logger) error { return withLog(l, "hide cursor", HideCursor) }
func ShowCursorWithLog(l logging.Logger) error { return withLog(l, "show cursor", ShowCursor) }

func writeVT(s string) error {
	var lastErr error
	for _, p := range consolePaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		_ = f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return fmt.Errorf("write VT failed: %w", lastErr)
	}
	return fmt.Errorf("write VT failed: no console")
}
