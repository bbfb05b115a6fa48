package health

import (
	"io"
	"net/http"
	"strings"

	module "github.com/merpara/site/internal/services/web/module"
)

type handlers struct {
	watched []module.Module
}

func newHandlers(watched []module.Module) handlers {
	return handlers{watched: watched}
}

func (h handlers) unhealthy() []string {
	var ids []string
	for _, feature := range h.watched {
		reporter, ok := feature.(module.HealthReporter)
		if !ok || reporter.Healthy() {
			continue
		}
		ids = append(ids, feature.ID())
	}
	return ids
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if ids := h.unhealthy(); len(ids) > 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, "unavailable: "+strings.Join(ids, ", ")+"\n")
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "OK")
}
