package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/rook-computer/inkqr/internal/assets"
	"github.com/rook-computer/inkqr/internal/logging"
	"github.com/rook-computer/inkqr/internal/render"
)

// Generator validates render requests and runs them against the shared font.
// It is safe for concurrent use: the font is read-only and every call
// allocates its own matrix, mask and canvas.
type Generator struct {
	Font   *render.Font
	Logger logging.Logger

	// Timeout bounds a single Generate call. Zero disables it.
	Timeout time.Duration

	// DefaultAccent is used when a request leaves its accent unset (zero
	// alpha).
	DefaultAccent color.RGBA
}

func New(font *render.Font, logger logging.Logger, timeout time.Duration) *Generator {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &Generator{
		Font:          font,
		Logger:        logger,
		Timeout:       timeout,
		DefaultAccent: render.DefaultAccent,
	}
}

// LoadFont parses the bundled caption font. It is meant to run once at
// startup so a broken asset stops the process before it serves anything.
func LoadFont(backend render.FontBackend) (*render.Font, error) {
	return render.LoadFont(assets.FontTTF, backend)
}

// Normalize trims the text fields and fills unset defaults.
func (g *Generator) Normalize(cfg render.Config) render.Config {
	cfg.Payload = strings.TrimSpace(cfg.Payload)
	cfg.Caption = strings.TrimSpace(cfg.Caption)
	if cfg.Position == "" {
		cfg.Position = render.PositionCenter
	}
	if cfg.Accent.A == 0 {
		cfg.Accent = g.DefaultAccent
	}
	return cfg
}

type outcome struct {
	result render.Result
	err    error
}

// Generate renders cfg. Validation happens before any work starts, so an
// empty caption or payload never produces image bytes.
func (g *Generator) Generate(ctx context.Context, cfg render.Config) (render.Result, error) {
	cfg = g.Normalize(cfg)
	if err := cfg.Validate(); err != nil {
		g.Logger.Infof("render", "rejected request: %v", err)
		return render.Result{}, err
	}

	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	start := time.Now()
	done := make(chan outcome, 1)
	go func() {
		res, err := render.Generate(g.Font, cfg)
		done <- outcome{result: res, err: err}
	}()

	select {
	case <-ctx.Done():
		g.Logger.Errorf("render", "render abandoned after %s: %v", time.Since(start), ctx.Err())
		return render.Result{}, fmt.Errorf("render: %w", ctx.Err())
	case out := <-done:
		if out.err != nil {
			g.Logger.Errorf("render", "render failed (version=%d): %v", cfg.Version, out.err)
			return render.Result{}, out.err
		}
		res := out.result
		g.Logger.Infof("render", "rendered version=%d modules=%d module_px=%d font_px=%d bytes=%d in %s",
			res.Version, res.Dimension, res.ModuleSize, res.FontSize, len(res.PNG), time.Since(start))
		return res, nil
	}
}

// IsTimeout reports whether err came from the generator's deadline or the
// caller's context being cancelled.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
