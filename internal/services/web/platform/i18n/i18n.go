// Package i18n resolves the display language for a web request.
package i18n

import (
	"net/http"
	"strings"

	platformi18n "github.com/merpara/site/internal/platform/i18n"
	"golang.org/x/text/language"
)

// ResolveTag matches the request's Accept-Language against the supported
// languages, falling back to the default.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return platformi18n.DefaultTag()
	}
	header := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if header == "" {
		return platformi18n.DefaultTag()
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return platformi18n.DefaultTag()
	}
	return platformi18n.MatchTags(tags)
}
