// Package weberror renders shared error responses for web modules.
package weberror

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	apperrors "github.com/merpara/site/internal/services/web/platform/errors"
	"github.com/merpara/site/internal/services/web/platform/httpx"
	"github.com/merpara/site/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe error message. Raw error text is never
// exposed; only the status text of the mapped status is.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes the standalone error page for statusCode.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, lang string) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	var buf bytes.Buffer
	if err := templates.ErrorPage(lang, statusCode).Render(httpx.RequestContext(r), &buf); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

// WriteModuleError writes a module-safe error response. Not-found and server
// errors get the error page; other client errors get plain status text.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, lang string) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError && r != nil {
		log.Printf("module error method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, lang)
		return
	}
	http.Error(w, PublicMessage(err), statusCode)
}
