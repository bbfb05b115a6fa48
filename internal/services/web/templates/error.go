package templates

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/merpara/site/internal/platform/branding"
	"github.com/merpara/site/internal/services/web/routepath"
)

// ErrorPageTitle returns the document title for an error status.
func ErrorPageTitle(statusCode int) string {
	return errorHeading(statusCode) + " | " + branding.AppName
}

func errorHeading(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return "Page not found"
	}
	return "Something went wrong"
}

func errorMessage(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return "The page you are looking for does not exist."
	}
	return "We could not complete your request. Please try again."
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ErrorPage renders a standalone error document for statusCode.
func ErrorPage(lang string, statusCode int) templ.Component {
	return Layout(LayoutOptions{Lang: lang, Title: ErrorPageTitle(statusCode)}, component(func(h *htmlWriter) {
		h.raw(`<main class="error-page"><div class="glass-card"><p class="error-page__status">`)
		h.number(normalizeErrorStatus(statusCode))
		h.raw(`</p><h1>`)
		h.text(errorHeading(statusCode))
		h.raw(`</h1><p>`)
		h.text(errorMessage(statusCode))
		h.raw(`</p><a class="button button--primary"`)
		h.href(routepath.Root)
		h.raw(`>Back to home</a></div></main>`)
	}))
}
