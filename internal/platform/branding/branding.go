// Package branding holds the product identity shared by page chrome and logs.
package branding

import "time"

const (
	// AppName is the brand shown in the navbar, titles, and footer.
	AppName = "MERPARA"
	// Tagline is the hero eyebrow line.
	Tagline = "Powered by China's Leading Supply Chain"
	// MetaDescription is the default document description.
	MetaDescription = "Merpara partners with influencers to bring unique styles to market."
)

// CopyrightLine formats the footer notice for the year containing now.
func CopyrightLine(now time.Time) string {
	return "© " + now.Format("2006") + " Merpara. All rights reserved."
}
