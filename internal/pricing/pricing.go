package pricing

import "math"

// basePoints maps item categories to their base point value.
var basePoints = map[string]int{
	"clothing":    20,
	"shoes":       25,
	"accessories": 15,
	"bags":        30,
	"jewelry":     35,
	"other":       10,
}

// conditionMultiplier scales the base value by item condition.
var conditionMultiplier = map[string]float64{
	"new":      1.5,
	"like-new": 1.2,
	"good":     1.0,
	"fair":     0.8,
}

// defaultBase and defaultMultiplier apply to unknown categories/conditions.
const (
	defaultBase       = 10
	defaultMultiplier = 1.0
)

// PointValue computes an item's point value from its category and
// condition, rounded half-up. Computed once at item creation and never
// recomputed.
func PointValue(category, condition string) int {
	base, ok := basePoints[category]
	if !ok {
		base = defaultBase
	}
	multiplier, ok := conditionMultiplier[condition]
	if !ok {
		multiplier = defaultMultiplier
	}
	return int(math.Floor(float64(base)*multiplier + 0.5))
}
