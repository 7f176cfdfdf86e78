package web

import (
	"context"
	"image/color"

	"github.com/rook-computer/inkqr/internal/logging"
	"github.com/rook-computer/inkqr/internal/render"
)

// Renderer produces captioned QR codes. *app.Generator implements it.
type Renderer interface {
	Generate(ctx context.Context, cfg render.Config) (render.Result, error)
}

// Deps are the collaborators the router needs.
type Deps struct {
	Renderer Renderer
	Logger   logging.Logger

	// DefaultAccent pre-fills the form and is used when a request omits
	// the accent.
	DefaultAccent color.RGBA

	DevMode   bool
	StaticDir string
}

func (d Deps) withDefaults() Deps {
	out := d
	if out.Logger == nil {
		out.Logger = logging.NoopLogger{}
	}
	if out.DefaultAccent.A == 0 {
		out.DefaultAccent = render.DefaultAccent
	}
	return out
}
