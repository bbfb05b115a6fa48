package catalog

// DefaultPackages returns the three service tiers offered at launch.
func DefaultPackages() []Package {
	return []Package{
		{
			ID:       "pkg_discovery",
			Name:     "The Visionary",
			Subtitle: "Brand Discovery Phase",
			Price:    999,
			Features: []string{
				"Brand DNA Analysis",
				"Audience Niche Strategy",
				"Initial Collection Concept",
				"Market Price Positioning",
				"Dedicated Strategist Call",
			},
		},
		{
			ID:       "pkg_sampling",
			Name:     "The Creator",
			Subtitle: "Design & Sampling Phase",
			Price:    2499,
			Features: []string{
				"Includes 'Visionary' features",
				"Tech Pack Creation (3 SKUs)",
				"Fabric Sourcing & Selection",
				"First Prototype Production",
				"Fitting Review Session",
			},
			Recommended: true,
		},
		{
			ID:       "pkg_launch",
			Name:     "The Icon",
			Subtitle: "Full Production Setup",
			Price:    4999,
			Features: []string{
				"Includes 'Creator' features",
				"Supply Chain Setup",
				"Quality Control Management",
				"Logistics & Warehousing Plan",
				"Go-to-Market Strategy",
				"Ongoing Operations Support",
			},
		},
	}
}

// Default builds the launch catalog.
func Default() *Catalog {
	c, err := New(DefaultPackages())
	if err != nil {
		panic("catalog: invalid default packages: " + err.Error())
	}
	return c
}
