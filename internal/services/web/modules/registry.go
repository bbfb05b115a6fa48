package modules

import (
	"github.com/merpara/site/internal/services/web/modules/cartpanel"
	"github.com/merpara/site/internal/services/web/modules/catalogapi"
	"github.com/merpara/site/internal/services/web/modules/health"
	"github.com/merpara/site/internal/services/web/modules/landing"
	"github.com/merpara/site/internal/services/web/platform/modulehandler"
)

// DefaultModules returns the site's web modules. The health module watches
// every other module.
func DefaultModules(deps Dependencies) []Module {
	base := modulehandler.NewBase(deps.RequestSchemePolicy, deps.Now)
	features := []Module{
		landing.New(packageSource(deps), cartReader(deps), deps.Site, base),
		cartpanel.New(packageSource(deps), cartSessions(deps), base),
		catalogapi.New(packageSource(deps), base),
	}
	return append(features, health.New(features...))
}

// The helpers below keep a nil pointer from becoming a non-nil interface, so
// modules see a missing dependency as unconfigured.

func packageSource(deps Dependencies) interface {
	landing.PackageSource
	cartpanel.PackageLookup
	catalogapi.PackageSource
} {
	if deps.Catalog == nil {
		return nil
	}
	return deps.Catalog
}

func cartReader(deps Dependencies) landing.CartReader {
	if deps.Sessions == nil {
		return nil
	}
	return deps.Sessions
}

func cartSessions(deps Dependencies) cartpanel.CartSessions {
	if deps.Sessions == nil {
		return nil
	}
	return deps.Sessions
}
