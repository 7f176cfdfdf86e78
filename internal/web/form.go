package web

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rook-computer/inkqr/internal/app"
	"github.com/rook-computer/inkqr/internal/assets"
	"github.com/rook-computer/inkqr/internal/render"
)

const pageName = "index.html"

// pageData feeds index.html.
type pageData struct {
	Payload  string
	Caption  string
	Position string
	Accent   string
	Version  string
	Versions []int

	Error       string
	ImageSrc    template.URL
	UsedVersion int
	Size        int
}

// loadPage parses the page from staticDir when it holds index.html, and
// from the embedded assets otherwise.
func loadPage(staticDir string) (*template.Template, error) {
	if staticDir != "" {
		path := filepath.Join(staticDir, pageName)
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			return template.ParseFiles(path)
		}
	}
	page, err := template.ParseFS(assets.WebUI, pageName)
	if err != nil {
		return nil, fmt.Errorf("parse embedded page: %w", err)
	}
	return page, nil
}

func newPageData(v formValues) pageData {
	versions := make([]int, render.MaxVersion)
	for i := range versions {
		versions[i] = i + 1
	}
	return pageData{
		Payload:  v.Payload,
		Caption:  v.Caption,
		Position: v.Position,
		Accent:   v.Accent,
		Version:  v.Version,
		Versions: versions,
	}
}

// userMessage turns a render error into text for the form.
func userMessage(err error) string {
	switch {
	case errors.Is(err, errMissingPayload):
		return "Enter a URL or text to encode."
	case errors.Is(err, errMissingCaption):
		return "Enter a caption."
	case errors.Is(err, render.ErrCapacityExceeded):
		return "The payload does not fit the selected version. Pick a larger version or Auto."
	case errors.Is(err, render.ErrEncoding):
		return "The payload is too long for a QR code."
	case app.IsTimeout(err):
		return "Rendering took too long. Try again."
	default:
		return fmt.Sprintf("Could not generate the code: %v", err)
	}
}

func (h *handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, http.StatusOK, newPageData(readForm(r, h.deps)))
}

// handleGenerate renders the code and shows it inline on the form page.
func (h *handlers) handleGenerate(w http.ResponseWriter, r *http.Request) {
	values := readForm(r, h.deps)
	data := newPageData(values)

	res, err := h.generate(r, values)
	if err != nil {
		data.Error = userMessage(err)
		status, _ := errorStatus(err)
		h.writePage(w, status, data)
		return
	}

	data.ImageSrc = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(res.PNG))
	data.UsedVersion = res.Version
	data.Size = res.Size()
	h.writePage(w, http.StatusOK, data)
}

// handleDownload renders the code and sends it as a file.
func (h *handlers) handleDownload(w http.ResponseWriter, r *http.Request) {
	values := readForm(r, h.deps)
	res, err := h.generate(r, values)
	if err != nil {
		data := newPageData(values)
		data.Error = userMessage(err)
		status, _ := errorStatus(err)
		h.writePage(w, status, data)
		return
	}
	writePNG(w, res, downloadName)
}

func (h *handlers) generate(r *http.Request, values formValues) (render.Result, error) {
	cfg, err := values.toConfig()
	if err != nil {
		return render.Result{}, err
	}
	return h.deps.Renderer.Generate(r.Context(), cfg)
}

func (h *handlers) writePage(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		h.deps.Logger.Errorf("http", "page template: %v", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
