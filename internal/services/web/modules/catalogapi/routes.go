package catalogapi

import (
	"net/http"

	"github.com/merpara/site/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APIPackages, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIPackagePat, h.handleDetail)
	mux.HandleFunc(routepath.APIPrefix+"{rest...}", h.handleNotFound)
}
