// Package cartpanel serves the per-session cart: JSON reads and the form
// mutations behind the cart panel.
package cartpanel

import (
	"net/http"

	module "github.com/merpara/site/internal/services/web/module"
	"github.com/merpara/site/internal/services/web/platform/modulehandler"
	"github.com/merpara/site/internal/services/web/routepath"
)

// Module provides cart routes.
type Module struct {
	packages PackageLookup
	carts    CartSessions
	base     modulehandler.Base
}

// New returns a cart module with explicit collaborators.
func New(packages PackageLookup, carts CartSessions, base modulehandler.Base) Module {
	return Module{packages: packages, carts: carts, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "cart" }

// Healthy reports whether the cart module has a catalog and session registry.
func (m Module) Healthy() bool {
	return m.packages != nil && m.carts != nil
}

// Mount wires cart route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.packages, m.carts), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.CartPrefix, Handler: mux}, nil
}
