package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rook-computer/inkqr/internal/render"
)

// formValues are the raw inputs, kept so the form can be re-rendered with
// what the user typed.
type formValues struct {
	Payload  string
	Caption  string
	Accent   string
	Position string
	Version  string
}

// Field validation failures. They wrap render.ErrValidation so the API maps
// them to 400 like any other invalid input.
var (
	errMissingPayload = fmt.Errorf("%w: payload is required", render.ErrValidation)
	errMissingCaption = fmt.Errorf("%w: caption is required", render.ErrValidation)
)

// firstValue returns the first non-empty form or query value among names,
// so the legacy url/text/accent_color field names keep working.
func firstValue(r *http.Request, names ...string) string {
	for _, name := range names {
		if v := r.FormValue(name); v != "" {
			return v
		}
	}
	return ""
}

func readForm(r *http.Request, deps Deps) formValues {
	v := formValues{
		Payload:  strings.TrimSpace(firstValue(r, "payload", "url")),
		Caption:  strings.TrimSpace(firstValue(r, "caption", "text")),
		Accent:   strings.TrimSpace(firstValue(r, "accent", "accent_color")),
		Position: strings.TrimSpace(firstValue(r, "position")),
		Version:  strings.TrimSpace(firstValue(r, "version")),
	}
	if v.Accent == "" {
		v.Accent = render.HexColor(deps.DefaultAccent)
	}
	if v.Position == "" {
		v.Position = string(render.PositionCenter)
	}
	if v.Version == "" {
		v.Version = "auto"
	}
	return v
}

// toConfig validates the raw inputs field by field. Empty payload and
// caption are rejected here, before the renderer is involved.
func (v formValues) toConfig() (render.Config, error) {
	if v.Payload == "" {
		return render.Config{}, errMissingPayload
	}
	if v.Caption == "" {
		return render.Config{}, errMissingCaption
	}
	accent, err := render.ParseHexColor(v.Accent)
	if err != nil {
		return render.Config{}, err
	}
	pos, err := render.ParsePosition(v.Position)
	if err != nil {
		return render.Config{}, err
	}
	version, err := render.ParseVersion(v.Version)
	if err != nil {
		return render.Config{}, err
	}
	return render.Config{
		Payload:  v.Payload,
		Caption:  v.Caption,
		Accent:   accent,
		Position: pos,
		Version:  version,
	}, nil
}
