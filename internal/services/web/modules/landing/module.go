// Package landing serves the marketing page at the site root.
package landing

import (
	"net/http"

	"github.com/merpara/site/internal/services/web/content"
	module "github.com/merpara/site/internal/services/web/module"
	"github.com/merpara/site/internal/services/web/platform/modulehandler"
	"github.com/merpara/site/internal/services/web/routepath"
)

// Module provides the landing page route.
type Module struct {
	packages PackageSource
	carts    CartReader
	site     content.Site
	base     modulehandler.Base
}

// New returns a landing module with explicit collaborators.
func New(packages PackageSource, carts CartReader, site content.Site, base modulehandler.Base) Module {
	return Module{packages: packages, carts: carts, site: site, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "landing" }

// Healthy reports whether the landing module has a catalog and cart reader.
func (m Module) Healthy() bool {
	return m.packages != nil && m.carts != nil
}

// Mount wires landing route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.packages, m.carts, m.site), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
