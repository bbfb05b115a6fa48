package catalogapi

import (
	"strings"

	"github.com/merpara/site/internal/services/web/catalog"
	apperrors "github.com/merpara/site/internal/services/web/platform/errors"
)

// PackageSource lists and looks up catalog packages.
type PackageSource interface {
	List() []catalog.Package
	Lookup(id string) (catalog.Package, bool)
}

type unavailableSource struct{}

func (unavailableSource) List() []catalog.Package { return nil }

func (unavailableSource) Lookup(string) (catalog.Package, bool) { return catalog.Package{}, false }

type service struct {
	packages PackageSource
}

func newService(packages PackageSource) service {
	if packages == nil {
		packages = unavailableSource{}
	}
	return service{packages: packages}
}

func (s service) list() ([]catalog.Package, error) {
	packages := s.packages.List()
	if len(packages) == 0 {
		return nil, apperrors.E(apperrors.KindUnavailable, "catalog is not configured")
	}
	return packages, nil
}

func (s service) get(packageID string) (catalog.Package, error) {
	packageID = strings.TrimSpace(packageID)
	pkg, ok := s.packages.Lookup(packageID)
	if !ok {
		return catalog.Package{}, apperrors.Wrap(apperrors.KindNotFound, "package not found", catalog.ErrPackageNotFound)
	}
	return pkg, nil
}
