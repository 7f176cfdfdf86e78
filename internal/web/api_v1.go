package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/rook-computer/inkqr/internal/app"
	"github.com/rook-computer/inkqr/internal/render"
)

const (
	HeaderVersion    = "X-QR-Version"
	HeaderModuleSize = "X-QR-Module-Size"

	downloadName = "texted-qr.png"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type handlers struct {
	deps Deps
	page *template.Template
}

// handleRender serves GET/POST /api/v1/render and answers with the PNG.
func (h *handlers) handleRender(w http.ResponseWriter, r *http.Request) {
	cfg, err := readForm(r, h.deps).toConfig()
	if err != nil {
		h.writeRenderError(w, err)
		return
	}

	res, err := h.deps.Renderer.Generate(r.Context(), cfg)
	if err != nil {
		h.writeRenderError(w, err)
		return
	}
	writePNG(w, res, "")
}

// errorStatus maps render errors to an HTTP status and a stable code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, render.ErrValidation):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, render.ErrCapacityExceeded):
		return http.StatusUnprocessableEntity, "capacity_exceeded"
	case errors.Is(err, render.ErrEncoding):
		return http.StatusUnprocessableEntity, "encoding"
	case app.IsTimeout(err):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "render_failed"
	}
}

func (h *handlers) writeRenderError(w http.ResponseWriter, err error) {
	status, code := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.deps.Logger.Errorf("http", "render error: %v", err)
	}
	writeAPIError(w, status, code, err.Error())
}

// writePNG sends the image; a non-empty attachment name makes browsers save
// it instead of displaying it.
func writePNG(w http.ResponseWriter, res render.Result, attachment string) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(res.PNG)))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set(HeaderVersion, strconv.Itoa(res.Version))
	w.Header().Set(HeaderModuleSize, strconv.Itoa(res.ModuleSize))
	if attachment != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+attachment+`"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.PNG)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
