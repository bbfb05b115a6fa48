package landing

import (
	"context"
	"log"
	"time"

	"github.com/merpara/site/internal/services/web/cart"
	"github.com/merpara/site/internal/services/web/catalog"
	"github.com/merpara/site/internal/services/web/content"
	apperrors "github.com/merpara/site/internal/services/web/platform/errors"
	"github.com/merpara/site/internal/services/web/viewmodel"
	"golang.org/x/text/language"
)

// PackageSource lists the service packages offered on the pricing section.
type PackageSource interface {
	List() []catalog.Package
}

// CartReader loads the cart for a browser session.
type CartReader interface {
	Load(ctx context.Context, sessionID string) (cart.State, error)
}

type unavailablePackages struct{}

func (unavailablePackages) List() []catalog.Package { return nil }

type unavailableCarts struct{}

func (unavailableCarts) Load(context.Context, string) (cart.State, error) {
	return cart.State{}, apperrors.E(apperrors.KindUnavailable, "cart sessions are not configured")
}

type service struct {
	packages PackageSource
	carts    CartReader
	site     content.Site
}

func newService(packages PackageSource, carts CartReader, site content.Site) service {
	if packages == nil {
		packages = unavailablePackages{}
	}
	if carts == nil {
		carts = unavailableCarts{}
	}
	return service{packages: packages, carts: carts, site: site}
}

// loadPage builds the landing page for a session. A cart that cannot be
// loaded renders as empty rather than failing the page.
func (s service) loadPage(ctx context.Context, sessionID string, tag language.Tag, now time.Time) viewmodel.Page {
	state := cart.State{}
	if sessionID != "" {
		loaded, err := s.carts.Load(ctx, sessionID)
		if err != nil {
			log.Printf("landing cart load failed err=%v", err)
		} else {
			state = loaded
		}
	}
	return viewmodel.BuildPage(viewmodel.PageInput{
		Site:     s.site,
		Packages: s.packages.List(),
		Cart:     state,
		Now:      now,
		Language: tag,
	})
}
