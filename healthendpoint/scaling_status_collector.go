package healthendpoint

import (
	"time"

	"github.com/gsiscaler/autoscaler/models"

	"github.com/prometheus/client_golang/prometheus"
)

type ScalingStatusCollector interface {
	prometheus.Collector
	RecordUpdate(index models.Index, status models.UpdateStatus)
	SetProposedCapacity(index models.Index, capacity models.ProvisionedCapacity)
	ObserveEvaluation(tableName string, duration time.Duration)
}

type scalingStatusCollector struct {
	updates            *prometheus.CounterVec
	proposedCapacity   *prometheus.GaugeVec
	evaluationDuration *prometheus.HistogramVec
}

func NewScalingStatusCollector(namespace, subSystem string) ScalingStatusCollector {
	return &scalingStatusCollector{
		updates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "capacity_updates_total",
				Help:      "Number of capacity update attempts by outcome",
			}, []string{"table", "index", "status"}),
		proposedCapacity: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "proposed_capacity_units",
				Help:      "Capacity units proposed by the last evaluation",
			}, []string{"table", "index", "dimension"}),
		evaluationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "evaluation_duration_seconds",
				Help:      "Time taken to evaluate all indexes of a table",
				Buckets:   prometheus.DefBuckets,
			}, []string{"table"}),
	}
}

func (c *scalingStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	c.updates.Describe(ch)
	c.proposedCapacity.Describe(ch)
	c.evaluationDuration.Describe(ch)
}

func (c *scalingStatusCollector) Collect(ch chan<- prometheus.Metric) {
	c.updates.Collect(ch)
	c.proposedCapacity.Collect(ch)
	c.evaluationDuration.Collect(ch)
}

func (c *scalingStatusCollector) RecordUpdate(index models.Index, status models.UpdateStatus) {
	c.updates.WithLabelValues(index.TableName, index.IndexName, status.String()).Inc()
}

func (c *scalingStatusCollector) SetProposedCapacity(index models.Index, capacity models.ProvisionedCapacity) {
	c.proposedCapacity.WithLabelValues(index.TableName, index.IndexName, "read").Set(float64(capacity.ReadUnits))
	c.proposedCapacity.WithLabelValues(index.TableName, index.IndexName, "write").Set(float64(capacity.WriteUnits))
}

func (c *scalingStatusCollector) ObserveEvaluation(tableName string, duration time.Duration) {
	c.evaluationDuration.WithLabelValues(tableName).Observe(duration.Seconds())
}
