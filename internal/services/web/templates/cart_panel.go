package templates

import (
	"github.com/a-h/templ"
	"github.com/merpara/site/internal/services/web/content"
	"github.com/merpara/site/internal/services/web/routepath"
	"github.com/merpara/site/internal/services/web/viewmodel"
)

// CartPanelID is the DOM id HTMX swaps cart fragments into.
const CartPanelID = "cart-panel"

// CartPanel renders the cart summary. A closed panel still renders its
// wrapper so HTMX swaps have a target.
func CartPanel(panel viewmodel.CartPanel) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div`)
		h.attr("id", CartPanelID)
		h.raw(` class="cart-panel"`)
		if !panel.Open {
			h.raw(` hidden`)
			h.raw(`>`)
			h.component(cartCountUpdate(panel.Count))
			h.raw(`</div>`)
			return
		}
		h.raw(` role="dialog" aria-modal="true" aria-labelledby="cart-panel-title">`)
		h.component(cartCountUpdate(panel.Count))
		h.raw(`<form class="cart-panel__backdrop" method="post"`)
		h.attr("action", routepath.CartClose)
		h.attr("hx-post", routepath.CartClose)
		h.raw(` hx-target="#cart-panel" hx-swap="outerHTML"><button type="submit" aria-label="Close cart"></button></form>`)
		h.raw(`<div class="cart-panel__sheet"><div class="cart-panel__header"><h3 id="cart-panel-title">Your Selection</h3>`)
		h.raw(`<form method="post"`)
		h.attr("action", routepath.CartClose)
		h.attr("hx-post", routepath.CartClose)
		h.raw(` hx-target="#cart-panel" hx-swap="outerHTML"><button type="submit" class="icon-button" aria-label="Close cart">`)
		h.component(Icon(content.IconClose, "icon--md"))
		h.raw(`</button></form></div><div class="cart-panel__body">`)
		if panel.Empty {
			h.raw(`<div class="cart-panel__empty">`)
			h.component(Icon(content.IconBag, "icon--xl"))
			h.raw(`<p>Your cart is empty.</p></div>`)
		} else {
			h.raw(`<ul class="cart-panel__entries">`)
			for _, line := range panel.Entries {
				h.component(cartLine(line))
			}
			h.raw(`</ul>`)
		}
		h.raw(`</div><div class="cart-panel__footer"><div class="cart-panel__total"><span>Total</span><strong id="cart-total">`)
		h.text(panel.Total)
		h.raw(`</strong></div><button type="button" class="button button--primary button--block">Proceed to Checkout</button></div></div></div>`)
	})
}

func cartLine(line viewmodel.CartLine) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<li class="cart-line"`)
		h.attr("data-package-id", line.PackageID)
		h.raw(`><div><h4>`)
		h.text(line.Name)
		h.raw(`</h4><p>`)
		h.text(line.Subtitle)
		h.raw(`</p></div><div class="cart-line__actions"><span>`)
		h.text(line.Price)
		h.raw(`</span><form method="post"`)
		h.attr("action", routepath.CartRemove)
		h.attr("hx-post", routepath.CartRemove)
		h.raw(` hx-target="#cart-panel" hx-swap="outerHTML"><input type="hidden" name="index"`)
		h.raw(` value="`)
		h.number(line.Index)
		h.raw(`"><button type="submit" class="link-button link-button--danger">Remove</button></form></div></li>`)
	})
}

// cartCountUpdate refreshes the navbar badge out of band when the panel is
// swapped in by HTMX. Full page renders ignore it.
func cartCountUpdate(count int) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<template>`)
		cartBadge(h, count, true)
		h.raw(`</template>`)
	})
}

func cartBadge(h *htmlWriter, count int, oob bool) {
	h.raw(`<span class="cart-button__badge" id="cart-count"`)
	if oob {
		h.raw(` hx-swap-oob="outerHTML"`)
	}
	if count <= 0 {
		h.raw(` hidden></span>`)
		return
	}
	h.raw(`>`)
	h.number(count)
	h.raw(`</span>`)
}
