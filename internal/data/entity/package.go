package entity

type Tier string

const (
	// Guardian insurance plans
	TierBasic Tier = "basic"
	TierPlus  Tier = "plus"
	TierPro   Tier = "pro"

	// Travel packages
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
	TierLuxury   Tier = "luxury"
)

func (t Tier) IsValid() bool {
	switch t {
	case TierBasic, TierPlus, TierPro, TierStandard, TierPremium, TierLuxury:
		return true
	}
	return false
}

// Package is a catalog entry. Catalog values are shared and must not be mutated.
type Package struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Destination   string   `json:"destination,omitempty"`
	Price         float64  `json:"price"`
	Duration      string   `json:"duration"`
	Tier          Tier     `json:"tier"`
	AltitudeLimit string   `json:"altitude_limit,omitempty"`
	Highlights    []string `json:"highlights"`
	Includes      []string `json:"includes,omitempty"`
}

type InsurancePlan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Coverage []string `json:"coverage"`
}
