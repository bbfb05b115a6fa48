// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/merpara/site/internal/services/web/platform/httpx"
)

// ModulePage describes a module response for both full-page and HTMX flows.
// Page is the full document; Fragment is the partial swapped in by HTMX.
type ModulePage struct {
	StatusCode int
	Page       templ.Component
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage renders page into a buffer and writes it only after the
// render succeeds, so a failed render never leaves a half-written body.
func WriteModulePage(w http.ResponseWriter, r *http.Request, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	body := page.Page
	if httpx.IsHTMXRequest(r) && page.Fragment != nil {
		body = page.Fragment
	}
	if body == nil {
		body = emptyComponent{}
	}

	var buf bytes.Buffer
	if err := body.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
