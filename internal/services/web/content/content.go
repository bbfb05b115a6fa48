// Package content holds the static marketing copy rendered by the landing
// page: hero text, vision cards, the process timeline, and the team roster.
package content

// Icon names a glyph from the page's inline SVG sprite.
type Icon string

const (
	IconUsers    Icon = "users"
	IconTrending Icon = "trending-up"
	IconScissors Icon = "scissors"
	IconLayers   Icon = "layers"
	IconRocket   Icon = "rocket"
	IconCheck    Icon = "check"
	IconBag      Icon = "shopping-bag"
	IconArrow    Icon = "arrow-right"
	IconClose    Icon = "x"
	IconMenu     Icon = "menu"
)

// Hero is the first-screen headline block.
type Hero struct {
	Headline      []string
	Lede          string
	PrimaryCTA    string
	PrimaryHref   string
	SecondaryCTA  string
	SecondaryHref string
}

// VisionCard is one card in the about/vision section.
type VisionCard struct {
	Emoji string
	// Tint selects the badge background (blue, purple, green).
	Tint  string
	Title string
	Body  string
}

// Link is an anchor in the navbar or footer.
type Link struct {
	Label string
	Href  string
	Icon  Icon
}

// WorkflowStep is one stage of the process timeline.
type WorkflowStep struct {
	Number int
	Title  string
	Body   string
	Icon   Icon
}

// TeamMember is one person in the team roster.
type TeamMember struct {
	Name string
	Role string
	Bio  string
	Flag string
}

// Site groups all static copy for the landing page.
type Site struct {
	NavLinks      []Link
	Hero          Hero
	VisionTitle   string
	VisionLede    string
	Vision        []VisionCard
	ProcessTitle  string
	ProcessLede   string
	Workflow      []WorkflowStep
	PricingTitle  string
	PricingLede   string
	PricingNote   string
	TeamTitle     string
	TeamLede      string
	Team          []TeamMember
	FooterLinks   []Link
	FooterTagline string
}

// Default returns the launch copy.
func Default() Site {
	return Site{
		NavLinks: []Link{
			{Label: "Vision", Href: "#vision"},
			{Label: "Process", Href: "#process"},
			{Label: "Team", Href: "#team"},
			{Label: "Services", Href: "#pricing"},
		},
		Hero: Hero{
			Headline:      []string{"Transform your influence", "into a fashion brand."},
			Lede:          "Merpara partners with influencers to bring unique styles to market. Boutique design, agile production, and data-backed success.",
			PrimaryCTA:    "Start Your Brand",
			PrimaryHref:   "#pricing",
			SecondaryCTA:  "How it Works",
			SecondaryHref: "#process",
		},
		VisionTitle: "Who We Are",
		VisionLede:  "Your trusted global partner in fashion.",
		Vision: []VisionCard{
			{
				Emoji: "🌍",
				Tint:  "blue",
				Title: "Cross-Border Expertise",
				Body:  "Over 10 years experience bridging the gap between Western Influencers and Chinese manufacturing excellence.",
			},
			{
				Emoji: "🤝",
				Tint:  "purple",
				Title: "Global Presence",
				Body:  "Teams in China, US, and Latin America providing localized support and navigating international markets.",
			},
			{
				Emoji: "📈",
				Tint:  "green",
				Title: "ROI-Driven Approach",
				Body:  "We combine strategic planning with operational efficiency to maximize your brand's growth and profitability.",
			},
		},
		ProcessTitle: "The Journey",
		ProcessLede:  "A complete path from concept to collection.",
		Workflow: []WorkflowStep{
			{Number: 1, Title: "Brand Discovery", Body: "We align on your vision, audience, and market insights to ensure a solid foundation.", Icon: IconUsers},
			{Number: 2, Title: "Product Planning", Body: "Developing concepts, themes, and price points that resonate with your target audience.", Icon: IconTrending},
			{Number: 3, Title: "Design & Sampling", Body: "Creating prototypes and ensuring fit/quality through your feedback.", Icon: IconScissors},
			{Number: 4, Title: "Production", Body: "Managing manufacturing, quality control in China, and logistics.", Icon: IconLayers},
			{Number: 5, Title: "Launch Support", Body: "Warehousing, shipping logistics, and marketing strategies for entrance.", Icon: IconRocket},
		},
		PricingTitle: "Start Your Collection",
		PricingLede:  "Transparent service fees. No hidden costs.",
		PricingNote:  "* Note: Production costs (manufacturing actual garments) are calculated separately based on quantity and materials. These fees cover strategy, design, and operational management.",
		TeamTitle:    "Leadership Team",
		TeamLede:     "Global expertise. Local insights.",
		Team: []TeamMember{
			{Name: "Merlin Feng", Role: "Founder & CEO", Bio: "Drives cross-border strategy and ROI-focused execution.", Flag: "🇨🇳"},
			{Name: "Matthew Joy", Role: "Co-Founder & Partnerships", Bio: "Aligns long-term vision and content roadmap in the U.S.", Flag: "🇺🇸"},
			{Name: "Anastasia Cui", Role: "Co-founder & COO", Bio: "Leads product development and China supply-chain operations.", Flag: "🇨🇳"},
			{Name: "Jenny Paola Cubillos", Role: "Marketing Lead", Bio: "Designs global influencer and social strategies.", Flag: "🇨🇴"},
			{Name: "Felicia Joy", Role: "Creative Director", Bio: "Turns brand DNA into cohesive visuals and social content.", Flag: "🇺🇸"},
			{Name: "Will Guo", Role: "Fashion Design Lead", Bio: "Translates aesthetics into production-ready designs.", Flag: "🇨🇳"},
		},
		FooterLinks: []Link{
			{Label: "Privacy", Href: "#"},
			{Label: "Terms", Href: "#"},
			{Label: "Contact Us", Href: "mailto:merlin@merpara.com", Icon: IconArrow},
		},
		FooterTagline: "Empowering brands through authentic connections.",
	}
}
