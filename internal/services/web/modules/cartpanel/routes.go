package cartpanel

import (
	"net/http"

	"github.com/merpara/site/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Cart, h.handleSnapshot)
	mux.HandleFunc(http.MethodGet+" "+routepath.CartPrefix+"{$}", h.handleSnapshot)
	mux.HandleFunc(http.MethodPost+" "+routepath.CartAdd, h.handleAdd)
	mux.HandleFunc(http.MethodPost+" "+routepath.CartRemove, h.handleRemove)
	mux.HandleFunc(http.MethodPost+" "+routepath.CartOpen, h.handleOpen)
	mux.HandleFunc(http.MethodPost+" "+routepath.CartClose, h.handleClose)
	mux.HandleFunc(http.MethodGet+" "+routepath.CartPrefix+"{rest...}", h.WriteNotFound)
}
