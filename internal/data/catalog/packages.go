package catalog

import "trek-insurance/internal/data/entity"

type Variant string

const (
	VariantGuardian Variant = "guardian"
	VariantTravel   Variant = "travel"
)

var guardianPlans = []entity.Package{
	{
		ID:            "basic",
		Name:          "Basic Guardian",
		Description:   "Essential protection for trekkers",
		Price:         89,
		Duration:      "14 days",
		Tier:          entity.TierBasic,
		AltitudeLimit: "≤3,500m",
		Highlights: []string{
			"Emergency medical coverage",
			"Helicopter evacuation",
			"24/7 helpline support",
			"Equipment insurance",
		},
		Includes: []string{
			"Personal accident insurance",
			"Trip cancellation cover",
			"Lost luggage protection",
			"Basic device protection",
		},
	},
	{
		ID:            "plus",
		Name:          "Plus Guardian",
		Description:   "Enhanced coverage for serious adventurers",
		Price:         189,
		Duration:      "28 days",
		Tier:          entity.TierPlus,
		AltitudeLimit: "≤5,500m",
		Highlights: []string{
			"Comprehensive medical coverage",
			"Priority helicopter evacuation",
			"Expedition equipment cover",
			"Extended duration",
		},
		Includes: []string{
			"High-altitude medical insurance",
			"Advanced rescue services",
			"Full equipment replacement",
			"Premium device protection",
		},
	},
	{
		ID:            "pro",
		Name:          "Pro Guardian",
		Description:   "Ultimate protection for extreme expeditions",
		Price:         349,
		Duration:      "60 days",
		Tier:          entity.TierPro,
		AltitudeLimit: "≤6,000m+",
		Highlights: []string{
			"Platinum medical coverage",
			"Unlimited evacuation services",
			"Expedition support team",
			"Satellite communication",
		},
		Includes: []string{
			"Extreme altitude coverage",
			"24/7 dedicated support team",
			"Full expedition insurance",
			"Elite device protection",
			"Satellite phone included",
		},
	},
}

var travelPackages = []entity.Package{
	{
		ID:          "1",
		Name:        "Mediterranean Escape",
		Destination: "Mediterranean Coast",
		Description: "Experience the charm of Greece and Italy with comfortable accommodations",
		Price:       2499,
		Duration:    "7 days",
		Tier:        entity.TierStandard,
		Highlights:  []string{"4-star hotels", "Daily breakfast", "Guided tours", "Airport transfers"},
	},
	{
		ID:          "2",
		Name:        "Tokyo Essentials",
		Destination: "Tokyo & Kyoto",
		Description: "Explore Japan's vibrant culture with quality accommodations",
		Price:       2899,
		Duration:    "8 days",
		Tier:        entity.TierStandard,
		Highlights:  []string{"3-star hotels", "Daily breakfast", "Group tours", "JR pass included"},
	},
	{
		ID:          "3",
		Name:        "Safari Adventure",
		Destination: "African Safari",
		Description: "Witness African wildlife in comfortable safari lodges",
		Price:       3199,
		Duration:    "6 days",
		Tier:        entity.TierStandard,
		Highlights:  []string{"Safari lodge", "Game drives", "All meals", "Park fees"},
	},
	{
		ID:          "4",
		Name:        "Riviera Elegance",
		Destination: "Mediterranean Coast",
		Description: "Luxurious Mediterranean experience with 5-star resorts",
		Price:       4999,
		Duration:    "7 days",
		Tier:        entity.TierPremium,
		Highlights:  []string{"5-star beachfront", "Premium dining", "Private yacht", "Spa access", "Concierge service"},
	},
	{
		ID:          "5",
		Name:        "Tokyo Luxury",
		Destination: "Tokyo & Kyoto",
		Description: "Premium Japanese experience with exclusive access",
		Price:       5499,
		Duration:    "10 days",
		Tier:        entity.TierPremium,
		Highlights:  []string{"5-star hotels", "Private guide", "Michelin dining", "Tea ceremony", "Spa treatments"},
	},
	{
		ID:          "6",
		Name:        "Safari Luxury",
		Destination: "African Safari",
		Description: "Ultimate African safari with luxury lodges",
		Price:       6499,
		Duration:    "8 days",
		Tier:        entity.TierPremium,
		Highlights:  []string{"Luxury lodge", "Private jeeps", "Expert guides", "Champagne evenings", "Trophy hunting tours"},
	},
	{
		ID:          "7",
		Name:        "Mediterranean Ultra",
		Destination: "Mediterranean Coast",
		Description: "Ultimate Mediterranean luxury with private everything",
		Price:       9999,
		Duration:    "10 days",
		Tier:        entity.TierLuxury,
		Highlights:  []string{"Private yacht", "Michelin chefs", "Personal butler", "Helicopter tours", "Jewelry designer visit"},
	},
	{
		ID:          "8",
		Name:        "Tokyo Pinnacle",
		Destination: "Tokyo & Kyoto",
		Description: "The ultimate Japanese experience with imperial access",
		Price:       12999,
		Duration:    "12 days",
		Tier:        entity.TierLuxury,
		Highlights:  []string{"Palace tours", "Imperial dinner", "Private Shinkansen", "Artisan workshops", "Sake master experience"},
	},
	{
		ID:          "9",
		Name:        "Safari Pinnacle",
		Destination: "African Safari",
		Description: "Exclusive African adventure with VIP treatment",
		Price:       15999,
		Duration:    "10 days",
		Tier:        entity.TierLuxury,
		Highlights:  []string{"Private lodge", "Helicopter safaris", "Celebrity guide", "Private airstrip", "Conservation program"},
	},
}

// Packages lists a catalog variant, optionally filtered by tier. Unknown variants fall back to guardian
// and unknown tiers do not filter.
func Packages(variant Variant, tier entity.Tier) []entity.Package {
	source := guardianPlans
	if variant == VariantTravel {
		source = travelPackages
	}

	out := make([]entity.Package, 0, len(source))
	for _, pkg := range source {
		if tier.IsValid() && pkg.Tier != tier {
			continue
		}
		out = append(out, pkg)
	}
	return out
}

// FindPackage looks a package up by id across both catalogs.
func FindPackage(id string) (entity.Package, bool) {
	for _, pkg := range guardianPlans {
		if pkg.ID == id {
			return pkg, true
		}
	}
	for _, pkg := range travelPackages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return entity.Package{}, false
}
