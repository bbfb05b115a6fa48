package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/merpara/site/internal/platform/branding"
	platformi18n "github.com/merpara/site/internal/platform/i18n"
	"github.com/merpara/site/internal/services/web/routepath"
)

// LayoutOptions configures the document shell.
type LayoutOptions struct {
	Lang        string
	Title       string
	Description string
}

func (o LayoutOptions) normalized() LayoutOptions {
	if strings.TrimSpace(o.Lang) == "" {
		o.Lang = platformi18n.DefaultTag().String()
	}
	if strings.TrimSpace(o.Title) == "" {
		o.Title = branding.AppName
	}
	if strings.TrimSpace(o.Description) == "" {
		o.Description = branding.MetaDescription
	}
	return o
}

// Layout renders the HTML document around body.
func Layout(opts LayoutOptions, body templ.Component) templ.Component {
	opts = opts.normalized()
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html`)
		h.attr("lang", opts.Lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(opts.Title)
		h.raw(`</title><meta name="description"`)
		h.attr("content", opts.Description)
		h.raw(`><link rel="stylesheet"`)
		h.href(routepath.StaticPrefix + "styles.css")
		h.raw(`><script defer`)
		h.attr("src", htmxScriptURL)
		h.raw(`></script></head><body><div class="backdrop" aria-hidden="true"></div>`)
		h.component(IconSprite())
		h.component(body)
		h.raw(`</body></html>`)
	})
}
