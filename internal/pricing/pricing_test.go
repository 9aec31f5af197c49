package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test PointValue
func TestPointValue(t *testing.T) {
	t.Parallel()

	// Table-driven test cases
	tests := []struct {
		name      string
		category  string
		condition string
		want      int
	}{
		{name: "bags_new", category: "bags", condition: "new", want: 45},
		{name: "other_fair", category: "other", condition: "fair", want: 8},
		{name: "clothing_good", category: "clothing", condition: "good", want: 20},
		{name: "clothing_new", category: "clothing", condition: "new", want: 30},
		{name: "shoes_like_new", category: "shoes", condition: "like-new", want: 30},
		{name: "jewelry_new", category: "jewelry", condition: "new", want: 53}, // 35*1.5=52.5 rounds half-up
		{name: "accessories_fair", category: "accessories", condition: "fair", want: 12},
		{name: "unknown_category_defaults_to_base_10", category: "furniture", condition: "good", want: 10},
		{name: "unknown_condition_defaults_to_multiplier_1", category: "bags", condition: "worn", want: 30},
		{name: "unknown_category_and_condition", category: "", condition: "", want: 10},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, PointValue(tc.category, tc.condition))
		})
	}
}

// PointValue must be deterministic across repeated calls
func TestPointValue_Deterministic(t *testing.T) {
	t.Parallel()

	first := PointValue("shoes", "new")
	for i := 0; i < 100; i++ {
		require.Equal(t, first, PointValue("shoes", "new"))
	}
}
