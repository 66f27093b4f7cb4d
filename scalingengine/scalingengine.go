package scalingengine

import (
	"context"
	"errors"
	"fmt"

	"github.com/gsiscaler/autoscaler/circuitbreaker"
	"github.com/gsiscaler/autoscaler/db"
	"github.com/gsiscaler/autoscaler/dynamo"
	"github.com/gsiscaler/autoscaler/healthendpoint"
	"github.com/gsiscaler/autoscaler/metric"
	"github.com/gsiscaler/autoscaler/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"
)

type ScalingEngine interface {
	// EnsureProvisioning evaluates every configured index of the table. It
	// only fails for configuration errors and unrecognized remote errors.
	EnsureProvisioning(ctx context.Context, tableName string) error
}

type PolicyStore interface {
	ManagesTable(tableName string) bool
	GetIndexPolicy(index models.Index) (models.ScalingPolicy, bool)
}

type scalingEngine struct {
	logger       lager.Logger
	dynamoClient dynamo.Client
	fetcher      metric.Fetcher
	policies     PolicyStore
	gate         circuitbreaker.Gate
	historyDB    db.ScalingHistoryDB
	collector    healthendpoint.ScalingStatusCollector
	clock        clock.Clock
	dryRun       bool
	tableLock    *StripedLock
}

func NewScalingEngine(logger lager.Logger, dynamoClient dynamo.Client, fetcher metric.Fetcher, policies PolicyStore, gate circuitbreaker.Gate,
	historyDB db.ScalingHistoryDB, collector healthendpoint.ScalingStatusCollector, clock clock.Clock, dryRun bool, lockSize int) ScalingEngine {
	return &scalingEngine{
		logger:       logger.Session("scaling-engine"),
		dynamoClient: dynamoClient,
		fetcher:      fetcher,
		policies:     policies,
		gate:         gate,
		historyDB:    historyDB,
		collector:    collector,
		clock:        clock,
		dryRun:       dryRun,
		tableLock:    NewStripedLock(lockSize),
	}
}

func (s *scalingEngine) EnsureProvisioning(ctx context.Context, tableName string) error {
	logger := s.logger.Session("ensure-provisioning", lager.Data{"table": tableName, "cycle": uuid.NewString()})

	unlock := s.tableLock.Lock(tableName)
	defer unlock()

	if !s.policies.ManagesTable(tableName) {
		logger.Info("table-not-configured")
		return nil
	}

	if s.gate.IsOpen(ctx) {
		logger.Info("circuit-breaker-open", lager.Data{"message": "no capacity changes while the circuit breaker is open"})
		return nil
	}

	start := s.clock.Now()
	defer func() {
		s.collector.ObserveEvaluation(tableName, s.clock.Since(start))
	}()

	indexes, err := s.dynamoClient.ListIndexes(ctx, tableName)
	if models.IsNotFound(err) {
		logger.Info("table-not-found")
		return nil
	}
	if err != nil {
		logger.Error("failed-to-list-indexes", err)
		return fmt.Errorf("failed to list indexes of table %s: %w", tableName, err)
	}
	if len(indexes) == 0 {
		logger.Info("no-global-secondary-indexes")
		return nil
	}

	var errs []error
	for _, index := range indexes {
		policy, ok := s.policies.GetIndexPolicy(index)
		if !ok {
			logger.Debug("index-not-configured", lager.Data{"index": index.IndexName})
			continue
		}
		if err := s.ensureIndexProvisioning(ctx, logger, index, policy); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", index, err))
		}
	}
	return errors.Join(errs...)
}

func (s *scalingEngine) ensureIndexProvisioning(ctx context.Context, logger lager.Logger, index models.Index, policy models.ScalingPolicy) error {
	logger = logger.WithData(lager.Data{"index": index.IndexName})

	current, err := s.dynamoClient.GetProvisionedCapacity(ctx, index)
	if models.IsNotFound(err) {
		logger.Info("index-not-found")
		return nil
	}
	if err != nil {
		logger.Error("failed-to-get-provisioned-capacity", err)
		return err
	}

	metrics, err := s.fetcher.GetConsumptionMetrics(ctx, index)
	if models.IsNotFound(err) {
		logger.Info("index-not-found")
		return nil
	}
	if err != nil {
		logger.Error("failed-to-get-consumption-metrics", err)
		return err
	}

	decision := Decide(index, current, metrics, policy)
	logger.Info("decision", lager.Data{
		"current":        current,
		"consumption":    metrics,
		"proposed":       decision.Proposed(),
		"reads-changed":  decision.Reads.Changed,
		"writes-changed": decision.Writes.Changed,
		"reason":         decision.Reason(),
	})
	s.collector.SetProposedCapacity(index, decision.Proposed())

	if !decision.ChangeNeeded() {
		return nil
	}
	return s.updateThroughput(ctx, logger, decision, policy)
}
