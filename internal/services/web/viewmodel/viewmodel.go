// Package viewmodel turns cart state, catalog, and copy into the values the
// templates render. Every function here is pure: callers pass in the clock
// reading and language, and nothing is read from the environment.
package viewmodel

import (
	"time"

	"github.com/merpara/site/internal/platform/branding"
	platformi18n "github.com/merpara/site/internal/platform/i18n"
	"github.com/merpara/site/internal/services/web/cart"
	"github.com/merpara/site/internal/services/web/catalog"
	"github.com/merpara/site/internal/services/web/content"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PageInput carries everything needed to describe the landing page.
type PageInput struct {
	Site     content.Site
	Packages []catalog.Package
	Cart     cart.State
	Now      time.Time
	Language language.Tag
}

// Page is the full landing page description.
type Page struct {
	Lang        string
	Title       string
	Description string
	AppName     string
	Tagline     string
	NavLinks    []content.Link
	Hero        content.Hero

	VisionTitle string
	VisionLede  string
	Vision      []content.VisionCard

	ProcessTitle string
	ProcessLede  string
	Workflow     []content.WorkflowStep

	PricingTitle string
	PricingLede  string
	PricingNote  string
	Packages     []PackageTile

	TeamTitle string
	TeamLede  string
	Team      []content.TeamMember

	Cart   CartPanel
	Footer Footer
}

// PackageTile is one pricing card.
type PackageTile struct {
	ID          string
	Name        string
	Subtitle    string
	Price       string
	Features    []string
	Recommended bool
}

// CartPanel describes the slide-over cart summary.
type CartPanel struct {
	Open    bool
	Count   int
	Empty   bool
	Entries []CartLine
	Total   string
}

// CartLine is one cart entry. Index is the entry's position for removal.
type CartLine struct {
	Index     int
	PackageID string
	Name      string
	Subtitle  string
	Price     string
}

// Footer is the page footer.
type Footer struct {
	AppName   string
	Tagline   string
	Year      int
	Copyright string
	Links     []content.Link
}

// BuildPage describes the landing page for input.
func BuildPage(input PageInput) Page {
	tag := platformi18n.MatchTags([]language.Tag{input.Language})
	printer := platformi18n.Printer(tag)
	site := input.Site

	return Page{
		Lang:         tag.String(),
		Title:        branding.AppName + " | Fashion Supply Chain Partners",
		Description:  branding.MetaDescription,
		AppName:      branding.AppName,
		Tagline:      branding.Tagline,
		NavLinks:     cloneLinks(site.NavLinks),
		Hero:         cloneHero(site.Hero),
		VisionTitle:  site.VisionTitle,
		VisionLede:   site.VisionLede,
		Vision:       append([]content.VisionCard(nil), site.Vision...),
		ProcessTitle: site.ProcessTitle,
		ProcessLede:  site.ProcessLede,
		Workflow:     append([]content.WorkflowStep(nil), site.Workflow...),
		PricingTitle: site.PricingTitle,
		PricingLede:  site.PricingLede,
		PricingNote:  site.PricingNote,
		Packages:     buildTiles(input.Packages),
		TeamTitle:    site.TeamTitle,
		TeamLede:     site.TeamLede,
		Team:         append([]content.TeamMember(nil), site.Team...),
		Cart:         BuildCartPanel(input.Cart, printer),
		Footer:       buildFooter(site, input.Now),
	}
}

// BuildCartPanel describes the cart summary for state. Only the total is
// digit-grouped; line prices read like the tiles.
func BuildCartPanel(state cart.State, printer *message.Printer) CartPanel {
	panel := CartPanel{
		Open:  state.IsOpen,
		Count: state.Len(),
		Empty: state.Len() == 0,
		Total: platformi18n.FormatMoney(printer, state.Total()),
	}
	if len(state.Entries) > 0 {
		panel.Entries = make([]CartLine, len(state.Entries))
		for i, entry := range state.Entries {
			panel.Entries[i] = CartLine{
				Index:     i,
				PackageID: entry.Package.ID,
				Name:      entry.Package.Name,
				Subtitle:  entry.Package.Subtitle,
				Price:     platformi18n.FormatPrice(entry.Package.Price),
			}
		}
	}
	return panel
}

func buildTiles(packages []catalog.Package) []PackageTile {
	if len(packages) == 0 {
		return nil
	}
	tiles := make([]PackageTile, len(packages))
	for i, pkg := range packages {
		tiles[i] = PackageTile{
			ID:          pkg.ID,
			Name:        pkg.Name,
			Subtitle:    pkg.Subtitle,
			Price:       platformi18n.FormatPrice(pkg.Price),
			Features:    append([]string(nil), pkg.Features...),
			Recommended: pkg.Recommended,
		}
	}
	return tiles
}

func buildFooter(site content.Site, now time.Time) Footer {
	return Footer{
		AppName:   branding.AppName,
		Tagline:   site.FooterTagline,
		Year:      now.Year(),
		Copyright: branding.CopyrightLine(now),
		Links:     cloneLinks(site.FooterLinks),
	}
}

func cloneLinks(links []content.Link) []content.Link {
	return append([]content.Link(nil), links...)
}

func cloneHero(hero content.Hero) content.Hero {
	hero.Headline = append([]string(nil), hero.Headline...)
	return hero
}
