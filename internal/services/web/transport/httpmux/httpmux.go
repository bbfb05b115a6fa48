// Package httpmux wires shared, non-module routes into the root mux.
package httpmux

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/merpara/site/internal/services/web/routepath"
)

const staticCacheControl = "public, max-age=3600"

// MountStatic wires the shared static route into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, wrap func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if wrap != nil {
		staticHandler = wrap(staticHandler)
	}
	rootMux.Handle(http.MethodGet+" "+routepath.StaticPrefix, staticHandler)
}

// WithStaticHeaders attaches explicit content-type hints and a short cache
// lifetime for known static assets.
func WithStaticHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		case strings.HasSuffix(path, ".js"):
			w.Header().Set("Content-Type", "application/javascript")
		case strings.HasSuffix(path, ".svg"):
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		w.Header().Set("Cache-Control", staticCacheControl)
		next.ServeHTTP(w, r)
	})
}
