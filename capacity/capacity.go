// Package capacity computes new provisioned unit counts from an adjustment step.
package capacity

import (
	"fmt"

	"github.com/gsiscaler/autoscaler/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Increase returns current raised by adj, rounded up and clamped to [min, max].
func Increase(current int64, adj models.Adjustment, min int64, max int64) int64 {
	var raw decimal.Decimal
	switch adj.Kind {
	case models.AdjustmentPercent:
		raw = scale(current, hundred.Add(decimal.NewFromFloat(adj.Amount)))
	case models.AdjustmentUnits:
		raw = decimal.NewFromInt(current).Add(decimal.NewFromFloat(adj.Amount)).Ceil()
	default:
		panic(fmt.Sprintf("invalid adjustment kind %q", adj.Kind))
	}
	return Clamp(raw.IntPart(), min, max)
}

// Decrease returns current lowered by adj, rounded up and clamped to [min, max].
// Rounding up on decrease keeps the index from being under-provisioned by a
// fractional unit.
func Decrease(current int64, adj models.Adjustment, min int64, max int64) int64 {
	var raw decimal.Decimal
	switch adj.Kind {
	case models.AdjustmentPercent:
		raw = scale(current, hundred.Sub(decimal.NewFromFloat(adj.Amount)))
	case models.AdjustmentUnits:
		raw = decimal.NewFromInt(current).Sub(decimal.NewFromFloat(adj.Amount)).Ceil()
	default:
		panic(fmt.Sprintf("invalid adjustment kind %q", adj.Kind))
	}
	return Clamp(raw.IntPart(), min, max)
}

// Clamp bounds units to [min, max] and never returns a negative value.
func Clamp(units int64, min int64, max int64) int64 {
	if min < 0 {
		min = 0
	}
	if units > max {
		units = max
	}
	if units < min {
		units = min
	}
	return units
}

func scale(current int64, percent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(current).Mul(percent).Div(hundred).Ceil()
}
