package cartpanel

import (
	"net/http"
	"strconv"
	"strings"

	platformi18n "github.com/merpara/site/internal/platform/i18n"
	"github.com/merpara/site/internal/services/web/cart"
	apperrors "github.com/merpara/site/internal/services/web/platform/errors"
	"github.com/merpara/site/internal/services/web/platform/httpx"
	"github.com/merpara/site/internal/services/web/platform/modulehandler"
	"github.com/merpara/site/internal/services/web/platform/pagerender"
	"github.com/merpara/site/internal/services/web/platform/sessioncookie"
	"github.com/merpara/site/internal/services/web/routepath"
	"github.com/merpara/site/internal/services/web/templates"
	"github.com/merpara/site/internal/services/web/viewmodel"
)

// cartUpdatedEvent is the HX-Trigger event fired after every cart mutation.
const cartUpdatedEvent = "cart-updated"

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessioncookie.Read(r)
	state, err := h.service.snapshot(httpx.RequestContext(r), sessionID)
	if err != nil {
		httpx.WriteJSONAppError(w, err)
		return
	}
	printer := platformi18n.Printer(h.Language(r))
	_ = httpx.WriteJSON(w, http.StatusOK, newCartResponse(state, viewmodel.BuildCartPanel(state, printer)))
}

func (h handlers) handleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "failed to parse cart form"))
		return
	}
	pkg, err := h.service.resolvePackage(r.FormValue("package_id"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	sessionID, err := h.sessionID(w, r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	state, err := h.service.add(httpx.RequestContext(r), sessionID, pkg)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.writeCart(w, r, state, routepath.Pricing())
}

func (h handlers) handleRemove(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "failed to parse cart form"))
		return
	}
	index, err := strconv.Atoi(strings.TrimSpace(r.FormValue("index")))
	if err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "index must be an integer", err))
		return
	}
	sessionID, ok := sessioncookie.Read(r)
	if !ok {
		h.endSession(w, r)
		h.writeCart(w, r, cart.State{}, routepath.Pricing())
		return
	}
	state, err := h.service.remove(httpx.RequestContext(r), sessionID, index)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if isBlank(state) {
		h.endSession(w, r)
	}
	h.writeCart(w, r, state, routepath.Pricing())
}

func (h handlers) handleOpen(w http.ResponseWriter, r *http.Request) {
	h.handleToggle(w, r, true, routepath.Pricing())
}

func (h handlers) handleClose(w http.ResponseWriter, r *http.Request) {
	h.handleToggle(w, r, false, routepath.Root)
}

func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request, open bool, redirect string) {
	if _, ok := sessioncookie.Read(r); !ok && !open {
		h.endSession(w, r)
		h.writeCart(w, r, cart.State{}, redirect)
		return
	}
	sessionID, err := h.sessionID(w, r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	state, err := h.service.setOpen(httpx.RequestContext(r), sessionID, open)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if isBlank(state) {
		h.endSession(w, r)
	}
	h.writeCart(w, r, state, redirect)
}

// sessionID returns the request's cart session, minting one and setting the
// cookie when the browser has none yet.
func (h handlers) sessionID(w http.ResponseWriter, r *http.Request) (string, error) {
	if sessionID, ok := sessioncookie.Read(r); ok {
		return sessionID, nil
	}
	sessionID, err := h.service.newSessionID()
	if err != nil {
		return "", err
	}
	sessioncookie.Write(w, r, sessionID, h.Policy())
	return sessionID, nil
}

// endSession expires a session cookie the browser sent. A blank cart is not
// stored, so the id it carried no longer names anything.
func (h handlers) endSession(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(sessioncookie.Name); err != nil {
		return
	}
	sessioncookie.Clear(w, r, h.Policy())
}

func isBlank(state cart.State) bool {
	return len(state.Entries) == 0 && !state.IsOpen
}

// writeCart answers a mutation: HTMX gets the refreshed panel fragment,
// plain form posts are redirected back to the page.
func (h handlers) writeCart(w http.ResponseWriter, r *http.Request, state cart.State, redirect string) {
	if !httpx.IsHTMXRequest(r) {
		httpx.WriteRedirect(w, r, redirect)
		return
	}
	printer := platformi18n.Printer(h.Language(r))
	httpx.SetHXTrigger(w, cartUpdatedEvent)
	h.WritePage(w, r, pagerender.ModulePage{
		StatusCode: http.StatusOK,
		Fragment:   templates.CartPanel(viewmodel.BuildCartPanel(state, printer)),
	})
}
