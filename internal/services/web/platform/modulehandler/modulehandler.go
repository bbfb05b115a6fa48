// Package modulehandler provides a composable base for web module handlers.
//
// Page-rendering modules share language resolution, clock access, page
// rendering, and error handling. Modules embed Base rather than duplicating
// that scaffold.
package modulehandler

import (
	"net/http"
	"time"

	webi18n "github.com/merpara/site/internal/services/web/platform/i18n"
	"github.com/merpara/site/internal/services/web/platform/pagerender"
	"github.com/merpara/site/internal/services/web/platform/requestmeta"
	"github.com/merpara/site/internal/services/web/platform/weberror"
	"golang.org/x/text/language"
)

// Base carries the shared request-scoped helpers used by module handlers.
type Base struct {
	policy requestmeta.SchemePolicy
	now    func() time.Time
}

// NewBase builds a handler base. A nil clock falls back to time.Now.
func NewBase(policy requestmeta.SchemePolicy, now func() time.Time) Base {
	return Base{policy: policy, now: now}
}

// NewTestBase builds a handler base pinned to a fixed instant.
func NewTestBase(at time.Time) Base {
	return Base{now: func() time.Time { return at }}
}

// Policy returns the scheme policy used for cookies and origin checks.
func (b Base) Policy() requestmeta.SchemePolicy {
	return b.policy
}

// Now reads the handler clock.
func (b Base) Now() time.Time {
	if b.now == nil {
		return time.Now()
	}
	return b.now()
}

// Language resolves the request language.
func (b Base) Language(r *http.Request) language.Tag {
	return webi18n.ResolveTag(r)
}

// WritePage renders a module page, falling back to the error page when the
// render fails.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.ModulePage) {
	if err := pagerender.WriteModulePage(w, r, page); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteError renders a module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, webi18n.ResolveTag(r).String())
}

// WriteNotFound renders the 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, webi18n.ResolveTag(r).String())
}
