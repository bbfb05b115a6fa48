// Package catalogapi exposes the package catalog as JSON.
package catalogapi

import (
	"net/http"

	module "github.com/merpara/site/internal/services/web/module"
	"github.com/merpara/site/internal/services/web/platform/modulehandler"
	"github.com/merpara/site/internal/services/web/routepath"
)

// Module provides catalog API routes.
type Module struct {
	packages PackageSource
	base     modulehandler.Base
}

// New returns a catalog API module.
func New(packages PackageSource, base modulehandler.Base) Module {
	return Module{packages: packages, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "catalogapi" }

// Healthy reports whether a catalog is configured.
func (m Module) Healthy() bool { return m.packages != nil }

// Mount wires catalog API route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.packages), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
