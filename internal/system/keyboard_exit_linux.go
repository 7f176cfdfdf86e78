//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/inkqr/internal/logging"
)

const evKey = 0x01

// Key codes from linux/input-event-codes.h.
const (
	KeyEsc = 1
	KeyQ   = 16
	KeyF4  = 62
)

// DefaultExitKeys close the display.
var DefaultExitKeys = []uint16{KeyEsc, KeyQ, KeyF4}

// eventSize returns the size of struct input_event on this arch:
// timeval, u16 type, u16 code, s32 value.
func eventSize() (tvSize, size int) {
	tvSize = binary.Size(unix.Timeval{})
	return tvSize, tvSize + 2 + 2 + 4
}

// IsKeyPress reports whether rec is a key-down event for one of keys.
func IsKeyPress(rec []byte, tvSize int, keys []uint16) bool {
	if len(rec) < tvSize+8 {
		return false
	}
	typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
	code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
	value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
	if typ != evKey || value != 1 {
		return false
	}
	for _, k := range keys {
		if code == k {
			return true
		}
	}
	return false
}

// StartExitOnKeys watches /dev/input/event* and calls onExit once when any
// of keys is pressed. Without readable input devices it logs and returns.
func StartExitOnKeys(ctx context.Context, logger logging.Logger, keys []uint16, onExit func()) {
	if onExit == nil || len(keys) == 0 {
		return
	}
	if logger == nil {
		logger = logging.NoopLogger{}
	}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		logger.Infof("input", "no evdev devices found, exit keys disabled")
		return
	}

	var once sync.Once
	trigger := func(path string) {
		once.Do(func() {
			logger.Infof("input", "exit key pressed on %s", path)
			onExit()
		})
	}

	for _, path := range paths {
		go watchDevice(ctx, path, keys, trigger)
	}
}

func watchDevice(ctx context.Context, path string, keys []uint16, trigger func(string)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	// The fd stays raw: it is polled and read with unix calls only.
	defer unix.Close(fd)

	if watchFD(ctx, fd, keys) {
		trigger(path)
	}
}

// watchFD reads input events from a nonblocking fd until one of keys is
// pressed (true) or ctx ends or the device goes away (false).
func watchFD(ctx context.Context, fd int, keys []uint16) bool {
	tvSize, size := eventSize()
	buf := make([]byte, 64*size)
	for {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return false
		}
		revents := pollFds[0].Revents
		if revents&unix.POLLIN == 0 {
			if revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0 {
				return false
			}
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return false
		}
		if n == 0 {
			return false
		}
		for off := 0; off+size <= n; off += size {
			if IsKeyPress(buf[off:off+size], tvSize, keys) {
				return true
			}
		}
	}
}
