package metric

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gsiscaler/autoscaler/models"
	"github.com/gsiscaler/autoscaler/ratelimiter"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	Namespace                  = "AWS/DynamoDB"
	ConsumedReadCapacityUnits  = "ConsumedReadCapacityUnits"
	ConsumedWriteCapacityUnits = "ConsumedWriteCapacityUnits"

	DefaultLookbackPeriod = 5 * time.Minute
	minimumPeriod         = time.Minute
)

type CloudWatchAPI interface {
	GetMetricStatistics(ctx context.Context, params *cloudwatch.GetMetricStatisticsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.GetMetricStatisticsOutput, error)
}

type CapacityReader interface {
	GetProvisionedCapacity(ctx context.Context, index models.Index) (models.ProvisionedCapacity, error)
}

type Fetcher interface {
	GetConsumptionMetrics(ctx context.Context, index models.Index) (models.ConsumptionMetrics, error)
}

type cloudWatchFetcher struct {
	logger   lager.Logger
	api      CloudWatchAPI
	capacity CapacityReader
	limiter  ratelimiter.Limiter
	clock    clock.Clock
	lookback time.Duration

	requestTimeout time.Duration
}

// NewCloudWatchFetcher bounds every CloudWatch call by requestTimeout; zero
// leaves the caller's deadline in charge.
func NewCloudWatchFetcher(logger lager.Logger, api CloudWatchAPI, capacity CapacityReader, limiter ratelimiter.Limiter, clock clock.Clock,
	lookback time.Duration, requestTimeout time.Duration) Fetcher {
	if lookback < minimumPeriod {
		lookback = DefaultLookbackPeriod
	}
	return &cloudWatchFetcher{
		logger:   logger.Session("cloudwatch-fetcher"),
		api:      api,
		capacity: capacity,
		limiter:  limiter,
		clock:    clock,
		lookback: lookback.Truncate(minimumPeriod),

		requestTimeout: requestTimeout,
	}
}

func NewCloudWatchAPI(cfg aws.Config, endpoint string) *cloudwatch.Client {
	return cloudwatch.NewFromConfig(cfg, func(o *cloudwatch.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// GetConsumptionMetrics reports the consumed units of the lookback period as
// a percentage of the currently provisioned units, capped at 100.
func (f *cloudWatchFetcher) GetConsumptionMetrics(ctx context.Context, index models.Index) (models.ConsumptionMetrics, error) {
	provisioned, err := f.capacity.GetProvisionedCapacity(ctx, index)
	if err != nil {
		return models.ConsumptionMetrics{}, err
	}

	consumedReads, err := f.consumedUnitsPerSecond(ctx, index, ConsumedReadCapacityUnits)
	if err != nil {
		return models.ConsumptionMetrics{}, err
	}
	consumedWrites, err := f.consumedUnitsPerSecond(ctx, index, ConsumedWriteCapacityUnits)
	if err != nil {
		return models.ConsumptionMetrics{}, err
	}

	metrics := models.ConsumptionMetrics{
		ConsumedReadPercent:  percentOf(consumedReads, provisioned.ReadUnits),
		ConsumedWritePercent: percentOf(consumedWrites, provisioned.WriteUnits),
	}
	f.logger.Debug("consumption", lager.Data{"index": index.String(), "provisioned": provisioned, "metrics": metrics})
	return metrics, nil
}

func (f *cloudWatchFetcher) consumedUnitsPerSecond(ctx context.Context, index models.Index, metricName string) (float64, error) {
	if err := f.limiter.Wait(ctx, "GetMetricStatistics"); err != nil {
		return 0, err
	}

	if f.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.requestTimeout)
		defer cancel()
	}

	end := f.clock.Now().UTC()
	start := end.Add(-f.lookback)
	out, err := f.api.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String(Namespace),
		MetricName: aws.String(metricName),
		Dimensions: []cwtypes.Dimension{
			{Name: aws.String("TableName"), Value: aws.String(index.TableName)},
			{Name: aws.String("GlobalSecondaryIndexName"), Value: aws.String(index.IndexName)},
		},
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		Period:     aws.Int32(int32(f.lookback.Seconds())),
		Statistics: []cwtypes.Statistic{cwtypes.StatisticSum},
	})
	if err != nil {
		f.logger.Error("failed-to-get-metric-statistics", err, lager.Data{"index": index.String(), "metric": metricName})
		return 0, fmt.Errorf("get %s for %s: %w", metricName, index, err)
	}

	var sum float64
	for _, datapoint := range out.Datapoints {
		sum = math.Max(sum, aws.ToFloat64(datapoint.Sum))
	}
	return sum / f.lookback.Seconds(), nil
}

func percentOf(consumed float64, provisioned int64) float64 {
	if provisioned <= 0 {
		return 0
	}
	return math.Min(consumed/float64(provisioned)*100, 100)
}
