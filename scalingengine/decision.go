package scalingengine

import (
	"fmt"

	"github.com/gsiscaler/autoscaler/capacity"
	"github.com/gsiscaler/autoscaler/models"
)

type DimensionDecision struct {
	Current  int64
	Proposed int64
	Changed  bool
	Reason   string
}

type Decision struct {
	Index  models.Index
	Reads  DimensionDecision
	Writes DimensionDecision
}

func (d Decision) ChangeNeeded() bool {
	return d.Reads.Changed || d.Writes.Changed
}

func (d Decision) Current() models.ProvisionedCapacity {
	return models.ProvisionedCapacity{ReadUnits: d.Reads.Current, WriteUnits: d.Writes.Current}
}

// Proposed carries both dimensions even when only one of them changed.
func (d Decision) Proposed() models.ProvisionedCapacity {
	return models.ProvisionedCapacity{ReadUnits: d.Reads.Proposed, WriteUnits: d.Writes.Proposed}
}

func (d Decision) Reason() string {
	return fmt.Sprintf("reads: %s; writes: %s", d.Reads.Reason, d.Writes.Reason)
}

// Decide evaluates reads and writes independently against their thresholds.
func Decide(index models.Index, current models.ProvisionedCapacity, metrics models.ConsumptionMetrics, policy models.ScalingPolicy) Decision {
	return Decision{
		Index:  index,
		Reads:  decide(current.ReadUnits, metrics.ConsumedReadPercent, policy.Reads),
		Writes: decide(current.WriteUnits, metrics.ConsumedWritePercent, policy.Writes),
	}
}

func decide(current int64, consumed float64, policy models.DimensionPolicy) DimensionDecision {
	d := DimensionDecision{Current: current, Proposed: current}

	switch {
	case consumed == 0 && !policy.AllowScaleDownAtZero:
		d.Reason = "consumption is 0% and scaling down on 0% is disabled"
	case consumed >= policy.UpperThreshold:
		d.Proposed = capacity.Increase(current, policy.Increase, policy.Min, policy.Max)
		d.Reason = fmt.Sprintf("consumed %.2f%% is at or above upper threshold %g%%, increase by %s", consumed, policy.UpperThreshold, policy.Increase)
	case consumed <= policy.LowerThreshold:
		d.Proposed = capacity.Decrease(current, policy.Decrease, policy.Min, policy.Max)
		d.Reason = fmt.Sprintf("consumed %.2f%% is at or below lower threshold %g%%, decrease by %s", consumed, policy.LowerThreshold, policy.Decrease)
	default:
		d.Reason = fmt.Sprintf("consumed %.2f%% is within thresholds", consumed)
	}
	d.Changed = d.Proposed != current

	// the ceiling also applies when the existing capacity is already above it
	if d.Proposed > policy.Max {
		d.Proposed = policy.Max
		d.Changed = true
		d.Reason += fmt.Sprintf(", limited by max %d", policy.Max)
	}
	return d
}
