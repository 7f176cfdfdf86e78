package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rook-computer/inkqr/internal/logging"
)

// NewRouter builds the standard router:
//   - /, /generate, /download for the HTML form
//   - /api/v1/render for programmatic use
//   - /healthz for probes
func NewRouter(deps Deps) (http.Handler, error) {
	deps = deps.withDefaults()
	page, err := loadPage(deps.StaticDir)
	if err != nil {
		return nil, err
	}
	h := &handlers{deps: deps, page: page}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(deps.Logger))
	if deps.DevMode {
		r.Use(WithDevCORS)
	}

	r.Get("/", h.handleIndex)
	r.Post("/generate", h.handleGenerate)
	r.Post("/download", h.handleDownload)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/render", h.handleRender)
		r.Post("/render", h.handleRender)
	})
	return r, nil
}

func requestLogger(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Infof("http", "%s %s -> %d (%d bytes) in %s [%s]",
				r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start), middleware.GetReqID(r.Context()))
		})
	}
}
