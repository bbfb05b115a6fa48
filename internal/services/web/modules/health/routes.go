package health

import (
	"net/http"

	"github.com/merpara/site/internal/services/web/platform/httpx"
	"github.com/merpara/site/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	handler := httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(h.handleHealth))
	mux.Handle(routepath.Health, handler)
	mux.Handle(routepath.Health+"/{$}", handler)
}
