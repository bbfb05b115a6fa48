package templates

import (
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/merpara/site/internal/services/web/content"
	"github.com/merpara/site/internal/services/web/routepath"
	"github.com/merpara/site/internal/services/web/viewmodel"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// Page renders the full landing document.
func Page(page viewmodel.Page) templ.Component {
	return Layout(LayoutOptions{
		Lang:        page.Lang,
		Title:       page.Title,
		Description: page.Description,
	}, component(func(h *htmlWriter) {
		h.component(Navbar(page))
		h.raw(`<main>`)
		h.component(heroSection(page))
		h.component(visionSection(page))
		h.component(processSection(page))
		h.component(pricingSection(page))
		h.component(teamSection(page))
		h.raw(`</main>`)
		h.component(footer(page))
		h.component(CartPanel(page.Cart))
	}))
}

// Navbar renders the top bar with section links and the cart button.
func Navbar(page viewmodel.Page) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<nav class="navbar"><div class="navbar__inner">`)
		h.raw(`<a class="navbar__brand"`)
		h.href(routepath.Root)
		h.raw(`>`)
		h.text(page.AppName)
		h.raw(`</a><div class="navbar__links">`)
		navLinks(h, page.NavLinks)
		h.raw(`</div><div class="navbar__actions">`)
		h.component(CartButton(page.Cart.Count))
		h.raw(`<details class="navbar__menu"><summary aria-label="Menu">`)
		h.component(Icon(content.IconMenu, "icon--md"))
		h.raw(`</summary><div class="navbar__menu-links">`)
		navLinks(h, page.NavLinks)
		h.raw(`</div></details></div></div></nav>`)
	})
}

// CartButton renders the navbar cart control. The badge is hidden for an
// empty cart.
func CartButton(count int) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<form class="cart-button" method="post"`)
		h.attr("action", routepath.CartOpen)
		h.attr("hx-post", routepath.CartOpen)
		h.raw(` hx-target="#cart-panel" hx-swap="outerHTML"><button type="submit" class="cart-button__control" aria-label="Open cart">`)
		h.component(Icon(content.IconBag, "icon--md"))
		cartBadge(h, count, false)
		h.raw(`</button></form>`)
	})
}

func navLinks(h *htmlWriter, links []content.Link) {
	for _, link := range links {
		h.raw(`<a`)
		h.href(link.Href)
		h.raw(`>`)
		h.text(link.Label)
		h.raw(`</a>`)
	}
}

func heroSection(page viewmodel.Page) templ.Component {
	hero := page.Hero
	return component(func(h *htmlWriter) {
		h.raw(`<section class="hero"><div class="hero__inner">`)
		h.raw(`<span class="hero__eyebrow">`)
		h.text(page.Tagline)
		h.raw(`</span><h1 class="hero__headline">`)
		for i, line := range hero.Headline {
			if i > 0 {
				h.raw(`<br>`)
			}
			h.text(line)
		}
		h.raw(`</h1><p class="hero__lede">`)
		h.text(hero.Lede)
		h.raw(`</p><div class="hero__actions"><a class="button button--primary"`)
		h.href(hero.PrimaryHref)
		h.raw(`>`)
		h.text(hero.PrimaryCTA)
		h.raw(`</a><a class="button button--glass"`)
		h.href(hero.SecondaryHref)
		h.raw(`>`)
		h.text(hero.SecondaryCTA)
		h.raw(`</a></div></div></section>`)
	})
}

func sectionTitle(h *htmlWriter, title, subtitle string) {
	h.raw(`<header class="section-title"><h2>`)
	h.text(title)
	h.raw(`</h2><p>`)
	h.text(subtitle)
	h.raw(`</p></header>`)
}

func visionSection(page viewmodel.Page) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="section" id="vision"><div class="section__inner">`)
		sectionTitle(h, page.VisionTitle, page.VisionLede)
		h.raw(`<div class="grid grid--3">`)
		for _, card := range page.Vision {
			h.raw(`<article class="glass-card"><div`)
			h.attr("class", "glass-card__badge glass-card__badge--"+card.Tint)
			h.raw(`>`)
			h.text(card.Emoji)
			h.raw(`</div><h3>`)
			h.text(card.Title)
			h.raw(`</h3><p>`)
			h.text(card.Body)
			h.raw(`</p></article>`)
		}
		h.raw(`</div></div></section>`)
	})
}

func processSection(page viewmodel.Page) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="section section--tinted" id="process"><div class="section__inner">`)
		sectionTitle(h, page.ProcessTitle, page.ProcessLede)
		h.raw(`<ol class="timeline">`)
		for _, step := range page.Workflow {
			h.raw(`<li class="timeline__step"><div class="timeline__icon">`)
			h.component(Icon(step.Icon, "icon--lg"))
			h.raw(`<span class="timeline__number">`)
			h.number(step.Number)
			h.raw(`</span></div><h3>`)
			h.text(step.Title)
			h.raw(`</h3><p>`)
			h.text(step.Body)
			h.raw(`</p></li>`)
		}
		h.raw(`</ol></div></section>`)
	})
}

func pricingSection(page viewmodel.Page) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="section" id="pricing"><div class="section__inner">`)
		sectionTitle(h, page.PricingTitle, page.PricingLede)
		h.raw(`<div class="grid grid--3 pricing">`)
		for _, tile := range page.Packages {
			h.component(PackageTile(tile))
		}
		h.raw(`</div><p class="pricing__note">`)
		h.text(page.PricingNote)
		h.raw(`</p></div></section>`)
	})
}

// PackageTile renders one pricing card with its select form.
func PackageTile(tile viewmodel.PackageTile) templ.Component {
	return component(func(h *htmlWriter) {
		class := "glass-card package"
		if tile.Recommended {
			class += " package--recommended"
		}
		h.raw(`<article`)
		h.attr("class", class)
		h.attr("data-package-id", tile.ID)
		h.raw(`>`)
		if tile.Recommended {
			h.raw(`<div class="package__ribbon">Most Popular</div>`)
		}
		h.raw(`<div class="package__heading"><h3>`)
		h.text(tile.Name)
		h.raw(`</h3><p>`)
		h.text(tile.Subtitle)
		h.raw(`</p></div><div class="package__price"><span class="package__amount">`)
		h.text(tile.Price)
		h.raw(`</span><span class="package__unit">/ project</span></div><ul class="package__features">`)
		for _, feature := range tile.Features {
			h.raw(`<li>`)
			h.component(Icon(content.IconCheck, "icon--sm"))
			h.raw(`<span>`)
			h.text(feature)
			h.raw(`</span></li>`)
		}
		h.raw(`</ul><form method="post"`)
		h.attr("action", routepath.CartAdd)
		h.attr("hx-post", routepath.CartAdd)
		h.raw(` hx-target="#cart-panel" hx-swap="outerHTML"><input type="hidden" name="package_id"`)
		h.attr("value", tile.ID)
		buttonClass := "button button--outline button--block"
		if tile.Recommended {
			buttonClass = "button button--primary button--block"
		}
		h.raw(`><button type="submit"`)
		h.attr("class", buttonClass)
		h.raw(`>Select Plan `)
		h.component(Icon(content.IconArrow, "icon--sm"))
		h.raw(`</button></form></article>`)
	})
}

func teamSection(page viewmodel.Page) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section class="section section--soft" id="team"><div class="section__inner">`)
		sectionTitle(h, page.TeamTitle, page.TeamLede)
		h.raw(`<div class="grid grid--3">`)
		for _, member := range page.Team {
			h.raw(`<article class="glass-card team-card"><div class="team-card__avatar">`)
			h.text(initial(member.Name))
			h.raw(`</div><h3>`)
			h.text(member.Name)
			h.raw(` <span class="team-card__flag" title="Location">`)
			h.text(member.Flag)
			h.raw(`</span></h3><p class="team-card__role">`)
			h.text(member.Role)
			h.raw(`</p><p class="team-card__bio">`)
			h.text(member.Bio)
			h.raw(`</p></article>`)
		}
		h.raw(`</div></div></section>`)
	})
}

func footer(page viewmodel.Page) templ.Component {
	f := page.Footer
	return component(func(h *htmlWriter) {
		h.raw(`<footer class="footer"><div class="footer__inner"><div><h2>`)
		h.text(f.AppName)
		h.raw(`</h2><p>`)
		h.text(f.Tagline)
		h.raw(`</p></div><div class="footer__links">`)
		for _, link := range f.Links {
			h.raw(`<a`)
			h.href(link.Href)
			h.raw(`>`)
			h.text(link.Label)
			if link.Icon != "" {
				h.raw(` `)
				h.component(Icon(link.Icon, "icon--sm"))
			}
			h.raw(`</a>`)
		}
		h.raw(`</div><div class="footer__meta"><small class="footer__copyright" id="copyright">`)
		h.text(f.Copyright)
		h.raw(`</small></div></div></footer>`)
	})
}

func initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r)
}
