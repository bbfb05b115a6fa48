// Package sessioncookie centralizes the cart session cookie.
//
// The cookie carries no Max-Age or Expires, so browsers drop it when the
// browsing session ends and the cart goes with it.
package sessioncookie

import (
	"net/http"
	"strings"

	platformid "github.com/merpara/site/internal/platform/id"
	"github.com/merpara/site/internal/services/web/platform/requestmeta"
)

// Name is the canonical cart session cookie name.
const Name = "merpara_session"

// Read returns the session id from the request cookie. Values that were not
// minted by this site are reported as absent.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if !platformid.Valid(value) {
		return "", false
	}
	return value, true
}

// Write sets the session cookie for the current request context.
func Write(w http.ResponseWriter, r *http.Request, sessionID string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    strings.TrimSpace(sessionID),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie for the current request context.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
