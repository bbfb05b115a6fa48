package landing

import (
	"net/http"

	"github.com/merpara/site/internal/services/web/platform/httpx"
	"github.com/merpara/site/internal/services/web/platform/modulehandler"
	"github.com/merpara/site/internal/services/web/platform/pagerender"
	"github.com/merpara/site/internal/services/web/platform/sessioncookie"
	"github.com/merpara/site/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	tag := h.Language(r)
	sessionID, _ := sessioncookie.Read(r)
	page := h.service.loadPage(httpx.RequestContext(r), sessionID, tag, h.Now())
	h.WritePage(w, r, pagerender.ModulePage{
		StatusCode: http.StatusOK,
		Page:       templates.Page(page),
	})
}
