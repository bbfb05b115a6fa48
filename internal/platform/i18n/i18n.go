// Package i18n owns the site language and the money formatting shared by web
// rendering.
//
// All copy is written in American English, so en-US is the only supported
// tag; requests for other languages fall back to it.
package i18n

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{
	language.AmericanEnglish,
}

var matcher = language.NewMatcher(supported)

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return supported[0]
}

// MatchTags picks the best supported language for a ranked preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[idx]
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(MatchTags([]language.Tag{tag}))
}

// FormatMoney renders a whole-dollar amount with digit grouping,
// e.g. 3498 → "$3,498". Cart totals use it.
func FormatMoney(p *message.Printer, amount int) string {
	if p == nil {
		p = Printer(DefaultTag())
	}
	if amount < 0 {
		return "-$" + p.Sprintf("%d", -amount)
	}
	return "$" + p.Sprintf("%d", amount)
}

// FormatPrice renders a list price without grouping, e.g. 2499 → "$2499".
func FormatPrice(amount int) string {
	if amount < 0 {
		return "-$" + strconv.Itoa(-amount)
	}
	return "$" + strconv.Itoa(amount)
}
