// Package modules defines web module registry helpers.
package modules

import (
	"time"

	"github.com/merpara/site/internal/services/web/catalog"
	"github.com/merpara/site/internal/services/web/content"
	module "github.com/merpara/site/internal/services/web/module"
	"github.com/merpara/site/internal/services/web/platform/requestmeta"
	"github.com/merpara/site/internal/services/web/session"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the shared collaborators required to compose the web
// module registry.
type Dependencies struct {
	Catalog             *catalog.Catalog
	Site                content.Site
	Sessions            *session.Registry
	RequestSchemePolicy requestmeta.SchemePolicy
	Now                 func() time.Time
}
