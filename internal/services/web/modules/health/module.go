// Package health serves the liveness probe.
package health

import (
	"net/http"

	module "github.com/merpara/site/internal/services/web/module"
	"github.com/merpara/site/internal/services/web/routepath"
)

// Module provides the health route. It reports unhealthy when any module
// it watches does.
type Module struct {
	watched []module.Module
}

// New returns a health module watching modules. Modules that do not
// implement module.HealthReporter are treated as healthy.
func New(watched ...module.Module) Module {
	return Module{watched: append([]module.Module(nil), watched...)}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "health" }

// Mount wires the health route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.watched))
	return module.Mount{Prefix: routepath.Health + "/", Handler: mux}, nil
}
