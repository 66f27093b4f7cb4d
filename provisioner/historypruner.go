package provisioner

import (
	"context"
	"time"

	"github.com/gsiscaler/autoscaler/db"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

var _ Operator = &ScalingHistoryPruner{}

type ScalingHistoryPruner struct {
	historyDB      db.ScalingHistoryDB
	cutoffDuration time.Duration
	clock          clock.Clock
	logger         lager.Logger
}

func NewScalingHistoryPruner(historyDB db.ScalingHistoryDB, cutoffDuration time.Duration, clock clock.Clock, logger lager.Logger) *ScalingHistoryPruner {
	return &ScalingHistoryPruner{
		historyDB:      historyDB,
		cutoffDuration: cutoffDuration,
		clock:          clock,
		logger:         logger,
	}
}

func (hp ScalingHistoryPruner) Operate(ctx context.Context) {
	hp.logger.Debug("pruning-scaling-histories")

	timestamp := hp.clock.Now().Add(-hp.cutoffDuration).UnixNano()
	err := hp.historyDB.PruneScalingHistories(ctx, timestamp)
	if err != nil {
		hp.logger.Error("failed-prune-scaling-histories", err)
		return
	}
}
