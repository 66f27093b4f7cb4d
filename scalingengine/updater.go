package scalingengine

import (
	"context"
	"fmt"

	"github.com/gsiscaler/autoscaler/maintenance"
	"github.com/gsiscaler/autoscaler/models"

	"code.cloudfoundry.org/lager/v3"
)

// A limit_exceeded rejection of an update that changes both dimensions is
// retried at most this many times, one dimension per call.
const maxSplitDepth = 1

func (s *scalingEngine) updateThroughput(ctx context.Context, logger lager.Logger, decision Decision, policy models.ScalingPolicy) error {
	logger = logger.Session("update-throughput")

	history := s.newHistory(decision.Index, decision.Current(), decision.Proposed(), decision.Reason())
	actual, target, err := s.prepareUpdate(ctx, logger, decision, policy, history)
	if history.Status.Terminal() {
		s.recordHistory(logger, history)
		return err
	}
	return s.applyCapacity(ctx, logger, decision, actual, target)
}

// prepareUpdate leaves history PENDING when the target has to be applied.
func (s *scalingEngine) prepareUpdate(ctx context.Context, logger lager.Logger, decision Decision, policy models.ScalingPolicy, history *models.ScalingHistory) (actual models.ProvisionedCapacity, target models.ProvisionedCapacity, err error) {
	index := decision.Index

	indexStatus, err := s.dynamoClient.GetIndexStatus(ctx, index)
	if models.IsNotFound(err) {
		logger.Info("index-not-found")
		history.Status = models.UpdateStatusSkippedNotActive
		history.Message = "index not found"
		return actual, target, nil
	}
	if err != nil {
		logger.Error("failed-to-get-index-status", err)
		history.Status = models.UpdateStatusFailed
		history.Error = "failed to get index status: " + err.Error()
		return actual, target, err
	}
	if indexStatus != models.IndexStatusActive {
		logger.Info("index-not-active", lager.Data{"status": indexStatus})
		history.Status = models.UpdateStatusSkippedNotActive
		history.Message = fmt.Sprintf("index status is %s", indexStatus)
		return actual, target, nil
	}

	permitted, err := maintenance.IsPermitted(policy.MaintenanceWindows, s.clock.Now())
	if err != nil {
		logger.Error("invalid-maintenance-windows", err, lager.Data{"maintenance-windows": policy.MaintenanceWindows})
		history.Status = models.UpdateStatusFailed
		history.Error = err.Error()
		return actual, target, err
	}
	if !permitted {
		logger.Info("outside-maintenance-windows", lager.Data{"maintenance-windows": policy.MaintenanceWindows})
		history.Status = models.UpdateStatusSkippedWindow
		history.Message = "outside maintenance windows " + policy.MaintenanceWindows
		return actual, target, nil
	}

	actual, err = s.dynamoClient.GetProvisionedCapacity(ctx, index)
	if models.IsNotFound(err) {
		logger.Info("index-not-found")
		history.Status = models.UpdateStatusSkippedNotActive
		history.Message = "index not found"
		return actual, target, nil
	}
	if err != nil {
		logger.Error("failed-to-get-provisioned-capacity", err)
		history.Status = models.UpdateStatusFailed
		history.Error = "failed to get provisioned capacity: " + err.Error()
		return actual, target, err
	}

	target = coupleScaleDown(actual, decision.Proposed(), policy)
	history.OldReadUnits, history.OldWriteUnits = actual.ReadUnits, actual.WriteUnits
	history.NewReadUnits, history.NewWriteUnits = target.ReadUnits, target.WriteUnits

	if target == actual {
		logger.Info("capacity-unchanged", lager.Data{"actual": actual, "proposed": decision.Proposed()})
		history.Status = models.UpdateStatusSkippedUnchanged
		if target != decision.Proposed() {
			history.Message = "reads and writes must be decreased together"
		}
		return actual, target, nil
	}

	if s.dryRun {
		logger.Info("dry-run", lager.Data{"actual": actual, "target": target})
		history.Status = models.UpdateStatusDryRun
		history.Message = "dry run, capacity not applied"
	}
	return actual, target, nil
}

func (s *scalingEngine) applyCapacity(ctx context.Context, logger lager.Logger, decision Decision, actual models.ProvisionedCapacity, target models.ProvisionedCapacity) error {
	for depth := 0; ; depth++ {
		canSplit := depth < maxSplitDepth && changesBothDimensions(actual, target)
		status, err := s.applyOnce(ctx, logger, decision, actual, target, canSplit)
		if status != models.UpdateStatusRejectedRetried {
			return err
		}
		target = splitTarget(actual, target)
		logger.Info("retrying-single-dimension", lager.Data{"depth": depth + 1, "target": target})
	}
}

func (s *scalingEngine) applyOnce(ctx context.Context, logger lager.Logger, decision Decision, actual models.ProvisionedCapacity, target models.ProvisionedCapacity, canSplit bool) (models.UpdateStatus, error) {
	history := s.newHistory(decision.Index, actual, target, decision.Reason())
	defer s.recordHistory(logger, history)

	err := s.dynamoClient.ApplyCapacity(ctx, decision.Index, target)
	if err == nil {
		logger.Info("capacity-applied", lager.Data{"old": actual, "new": target})
		history.Status = models.UpdateStatusApplied
		return history.Status, nil
	}

	if models.IsNotFound(err) {
		logger.Info("index-not-found")
		history.Status = models.UpdateStatusSkippedNotActive
		history.Message = "index not found"
		return history.Status, nil
	}

	rejection, ok := models.AsCapacityRejection(err)
	if !ok {
		logger.Error("failed-to-apply-capacity", err, lager.Data{"target": target})
		history.Status = models.UpdateStatusFailed
		history.Error = "failed to apply capacity: " + err.Error()
		return history.Status, err
	}

	data := lager.Data{"category": rejection.Category, "code": rejection.Code, "message": rejection.Message, "target": target}
	history.Error = rejection.Error()
	switch rejection.Category {
	case models.RejectionLimitExceeded:
		if canSplit {
			logger.Info("capacity-limit-exceeded-splitting-update", data)
			history.Status = models.UpdateStatusRejectedRetried
			return history.Status, nil
		}
		logger.Info("capacity-limit-exceeded", data)
		history.Status = models.UpdateStatusRejectedTerminal
		return history.Status, nil
	case models.RejectionValidation, models.RejectionResourceBusy, models.RejectionAccessDenied:
		logger.Info("capacity-update-rejected", data)
		history.Status = models.UpdateStatusRejectedTerminal
		return history.Status, nil
	default:
		logger.Error("unrecognized-capacity-rejection", err, data)
		history.Status = models.UpdateStatusFailed
		return history.Status, err
	}
}

// coupleScaleDown reverts a decrease of one dimension unless the other
// dimension is decreasing as well or is already at its floor.
func coupleScaleDown(actual models.ProvisionedCapacity, proposed models.ProvisionedCapacity, policy models.ScalingPolicy) models.ProvisionedCapacity {
	if !policy.AlwaysDecreaseRWTogether {
		return proposed
	}

	readsDecrease := proposed.ReadUnits < actual.ReadUnits
	writesDecrease := proposed.WriteUnits < actual.WriteUnits
	readsQualify := readsDecrease || actual.ReadUnits <= policy.Reads.Min
	writesQualify := writesDecrease || actual.WriteUnits <= policy.Writes.Min

	target := proposed
	if readsDecrease && !writesQualify {
		target.ReadUnits = min(actual.ReadUnits, policy.Reads.Max)
	}
	if writesDecrease && !readsQualify {
		target.WriteUnits = min(actual.WriteUnits, policy.Writes.Max)
	}
	return target
}

func changesBothDimensions(actual models.ProvisionedCapacity, target models.ProvisionedCapacity) bool {
	return target.ReadUnits != actual.ReadUnits && target.WriteUnits != actual.WriteUnits
}

// splitTarget keeps only one changed dimension, preferring an increase and
// reads over writes. The other dimension stays at its actual value.
func splitTarget(actual models.ProvisionedCapacity, target models.ProvisionedCapacity) models.ProvisionedCapacity {
	split := actual
	switch {
	case target.ReadUnits > actual.ReadUnits:
		split.ReadUnits = target.ReadUnits
	case target.WriteUnits > actual.WriteUnits:
		split.WriteUnits = target.WriteUnits
	default:
		split.ReadUnits = target.ReadUnits
	}
	return split
}

func (s *scalingEngine) newHistory(index models.Index, current models.ProvisionedCapacity, target models.ProvisionedCapacity, reason string) *models.ScalingHistory {
	return &models.ScalingHistory{
		TableName:     index.TableName,
		IndexName:     index.IndexName,
		Timestamp:     s.clock.Now().UnixNano(),
		Status:        models.UpdateStatusPending,
		OldReadUnits:  current.ReadUnits,
		OldWriteUnits: current.WriteUnits,
		NewReadUnits:  target.ReadUnits,
		NewWriteUnits: target.WriteUnits,
		Reason:        reason,
	}
}

func (s *scalingEngine) recordHistory(logger lager.Logger, history *models.ScalingHistory) {
	s.collector.RecordUpdate(models.Index{TableName: history.TableName, IndexName: history.IndexName}, history.Status)
	err := s.historyDB.SaveScalingHistory(history)
	if err != nil {
		logger.Error("failed-to-save-scaling-history", err)
	}
}
