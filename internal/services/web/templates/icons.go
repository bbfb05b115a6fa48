package templates

import (
	"github.com/a-h/templ"
	"github.com/merpara/site/internal/services/web/content"
)

// iconPaths holds the stroke paths for each sprite symbol, 24x24 viewBox.
var iconPaths = map[content.Icon]string{
	content.IconUsers:    `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	content.IconTrending: `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
	content.IconScissors: `<circle cx="6" cy="6" r="3"/><path d="M8.12 8.12 12 12"/><path d="M20 4 8.12 15.88"/><circle cx="6" cy="18" r="3"/><path d="M14.8 14.8 20 20"/>`,
	content.IconLayers:   `<polygon points="12 2 2 7 12 12 22 7 12 2"/><polyline points="2 17 12 22 22 17"/><polyline points="2 12 12 17 22 12"/>`,
	content.IconRocket:   `<path d="M4.5 16.5c-1.5 1.26-2 5-2 5s3.74-.5 5-2c.71-.84.7-2.13-.09-2.91a2.18 2.18 0 0 0-2.91-.09z"/><path d="m12 15-3-3a22 22 0 0 1 2-3.95A12.88 12.88 0 0 1 22 2c0 2.72-.78 7.5-6 11a22.35 22.35 0 0 1-4 2z"/><path d="M9 12H4s.55-3.03 2-4c1.62-1.08 5 0 5 0"/><path d="M12 15v5s3.03-.55 4-2c1.08-1.62 0-5 0-5"/>`,
	content.IconCheck:    `<polyline points="20 6 9 17 4 12"/>`,
	content.IconBag:      `<path d="M6 2 3 6v14a2 2 0 0 0 2 2h14a2 2 0 0 0 2-2V6l-3-4z"/><line x1="3" x2="21" y1="6" y2="6"/><path d="M16 10a4 4 0 0 1-8 0"/>`,
	content.IconArrow:    `<line x1="5" x2="19" y1="12" y2="12"/><polyline points="12 5 19 12 12 19"/>`,
	content.IconClose:    `<line x1="18" x2="6" y1="6" y2="18"/><line x1="6" x2="18" y1="6" y2="18"/>`,
	content.IconMenu:     `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
}

var iconOrder = []content.Icon{
	content.IconUsers,
	content.IconTrending,
	content.IconScissors,
	content.IconLayers,
	content.IconRocket,
	content.IconCheck,
	content.IconBag,
	content.IconArrow,
	content.IconClose,
	content.IconMenu,
}

// IconSprite renders the hidden SVG symbol sheet referenced by Icon.
func IconSprite() templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<svg xmlns="http://www.w3.org/2000/svg" class="sprite" aria-hidden="true">`)
		for _, name := range iconOrder {
			h.raw(`<symbol viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"`)
			h.attr("id", "icon-"+string(name))
			h.raw(">")
			h.raw(iconPaths[name])
			h.raw("</symbol>")
		}
		h.raw("</svg>")
	})
}

// Icon renders a reference to a sprite symbol. Unknown names render nothing.
func Icon(name content.Icon, class string) templ.Component {
	return component(func(h *htmlWriter) {
		if _, ok := iconPaths[name]; !ok {
			return
		}
		h.raw("<svg")
		h.attr("class", "icon "+class)
		h.raw(` aria-hidden="true"><use`)
		h.attr("href", "#icon-"+string(name))
		h.raw("></use></svg>")
	})
}
