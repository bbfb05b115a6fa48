// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root          = "/"
	Health        = "/up"
	StaticPrefix  = "/static/"
	CartPrefix    = "/cart/"
	Cart          = "/cart"
	CartAdd       = "/cart/add"
	CartRemove    = "/cart/remove"
	CartOpen      = "/cart/open"
	CartClose     = "/cart/close"
	APIPrefix     = "/api/"
	APIPackages   = "/api/packages"
	APIPackagePat = APIPackages + "/{packageID}"
)

// Section anchors on the landing page.
const (
	AnchorVision  = "#vision"
	AnchorProcess = "#process"
	AnchorPricing = "#pricing"
	AnchorTeam    = "#team"
)

// Pricing returns the landing page scrolled to the pricing section.
func Pricing() string {
	return Root + AnchorPricing
}

// APIPackage returns the JSON route for one catalog package.
func APIPackage(packageID string) string {
	return APIPackages + "/" + escapeSegment(packageID)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
