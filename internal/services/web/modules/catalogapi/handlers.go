package catalogapi

import (
	"net/http"

	platformi18n "github.com/merpara/site/internal/platform/i18n"
	"github.com/merpara/site/internal/services/web/catalog"
	"github.com/merpara/site/internal/services/web/platform/httpx"
	"github.com/merpara/site/internal/services/web/platform/modulehandler"
	"github.com/merpara/site/internal/services/web/routepath"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

type packageResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Subtitle     string   `json:"subtitle"`
	Price        int      `json:"price"`
	PriceDisplay string   `json:"price_display"`
	Features     []string `json:"features"`
	Recommended  bool     `json:"recommended"`
	Href         string   `json:"href"`
}

type listResponse struct {
	Packages []packageResponse `json:"packages"`
}

func newPackageResponse(pkg catalog.Package) packageResponse {
	features := pkg.Features
	if features == nil {
		features = []string{}
	}
	return packageResponse{
		ID:           pkg.ID,
		Name:         pkg.Name,
		Subtitle:     pkg.Subtitle,
		Price:        pkg.Price,
		PriceDisplay: platformi18n.FormatPrice(pkg.Price),
		Features:     features,
		Recommended:  pkg.Recommended,
		Href:         routepath.APIPackage(pkg.ID),
	}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.list()
	if err != nil {
		httpx.WriteJSONAppError(w, err)
		return
	}
	resp := listResponse{Packages: make([]packageResponse, len(packages))}
	for i, pkg := range packages {
		resp.Packages[i] = newPackageResponse(pkg)
	}
	_ = httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.service.get(r.PathValue("packageID"))
	if err != nil {
		httpx.WriteJSONAppError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, newPackageResponse(pkg))
}

func (h handlers) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSONError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
