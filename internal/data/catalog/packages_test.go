package catalog

import (
	"testing"

	"trek-insurance/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackages(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		tier    entity.Tier
		wantIDs []string
	}{
		{"guardian plans", VariantGuardian, "", []string{"basic", "plus", "pro"}},
		{"unknown variant falls back to guardian", "other", "", []string{"basic", "plus", "pro"}},
		{"guardian by tier", VariantGuardian, entity.TierPro, []string{"pro"}},
		{"travel packages", VariantTravel, "", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		{"travel by tier", VariantTravel, entity.TierLuxury, []string{"7", "8", "9"}},
		{"unknown tier does not filter", VariantTravel, "gold", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		{"tier from the other catalog", VariantGuardian, entity.TierPremium, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Packages(tt.variant, tt.tier)

			ids := make([]string, 0, len(got))
			for _, pkg := range got {
				ids = append(ids, pkg.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFindPackage(t *testing.T) {
	plus, ok := FindPackage("plus")
	require.True(t, ok)
	assert.Equal(t, 189.0, plus.Price)
	assert.Equal(t, entity.TierPlus, plus.Tier)

	luxury, ok := FindPackage("9")
	require.True(t, ok)
	assert.Equal(t, 15999.0, luxury.Price)

	_, ok = FindPackage("missing")
	assert.False(t, ok)
}
