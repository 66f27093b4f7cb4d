package models

import "fmt"

type AdjustmentKind string

const (
	AdjustmentPercent AdjustmentKind = "percent"
	AdjustmentUnits   AdjustmentKind = "units"
)

func (k AdjustmentKind) Valid() bool {
	return k == AdjustmentPercent || k == AdjustmentUnits
}

// Adjustment is an increase or decrease step, either a percentage of the
// current capacity or an absolute number of units.
type Adjustment struct {
	Kind   AdjustmentKind `json:"kind"`
	Amount float64        `json:"amount"`
}

func (a Adjustment) String() string {
	if a.Kind == AdjustmentPercent {
		return fmt.Sprintf("%g%%", a.Amount)
	}
	return fmt.Sprintf("%g units", a.Amount)
}

type DimensionPolicy struct {
	UpperThreshold       float64    `json:"upper_threshold"`
	LowerThreshold       float64    `json:"lower_threshold"`
	Increase             Adjustment `json:"increase"`
	Decrease             Adjustment `json:"decrease"`
	Min                  int64      `json:"min"`
	Max                  int64      `json:"max"`
	AllowScaleDownAtZero bool       `json:"allow_scale_down_at_zero"`
}

// ScalingPolicy is built once per table and index before an evaluation and is
// never mutated while the evaluation runs.
type ScalingPolicy struct {
	Reads                    DimensionPolicy `json:"reads"`
	Writes                   DimensionPolicy `json:"writes"`
	AlwaysDecreaseRWTogether bool            `json:"always_decrease_rw_together"`
	MaintenanceWindows       string          `json:"maintenance_windows,omitempty"`
}
