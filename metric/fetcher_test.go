package metric_test

import (
	"context"
	"errors"
	"time"

	"github.com/gsiscaler/autoscaler/fakes"
	"github.com/gsiscaler/autoscaler/metric"
	"github.com/gsiscaler/autoscaler/models"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CloudWatchFetcher", func() {
	var (
		api      *fakes.FakeCloudWatchAPI
		capacity *fakes.FakeDynamoClient
		limiter  *fakes.FakeLimiter
		clock    *fakeclock.FakeClock
		fetcher  metric.Fetcher
		index    models.Index
		metrics  models.ConsumptionMetrics
		err      error
		now      time.Time
	)

	sumOf := func(sums ...float64) *cloudwatch.GetMetricStatisticsOutput {
		out := &cloudwatch.GetMetricStatisticsOutput{}
		for _, s := range sums {
			out.Datapoints = append(out.Datapoints, cwtypes.Datapoint{Sum: aws.Float64(s)})
		}
		return out
	}

	BeforeEach(func() {
		api = &fakes.FakeCloudWatchAPI{}
		capacity = &fakes.FakeDynamoClient{}
		limiter = &fakes.FakeLimiter{}
		now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		clock = fakeclock.NewFakeClock(now)
		index = models.Index{TableName: "orders", IndexName: "by_customer"}

		capacity.GetProvisionedCapacityReturns(models.ProvisionedCapacity{ReadUnits: 100, WriteUnits: 50}, nil)
		fetcher = metric.NewCloudWatchFetcher(lagertest.NewTestLogger("fetcher"), api, capacity, limiter, clock, 5*time.Minute, 10*time.Second)
	})

	JustBeforeEach(func() {
		metrics, err = fetcher.GetConsumptionMetrics(context.Background(), index)
	})

	Context("when both metrics have datapoints", func() {
		BeforeEach(func() {
			// 300s lookback: 27000 reads is 90 units/s, 3000 writes is 10 units/s
			api.GetMetricStatisticsReturnsOnCall(0, sumOf(27000), nil)
			api.GetMetricStatisticsReturnsOnCall(1, sumOf(3000), nil)
		})

		It("reports consumption relative to the provisioned units", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(metrics.ConsumedReadPercent).To(BeNumerically("~", 90, 0.001))
			Expect(metrics.ConsumedWritePercent).To(BeNumerically("~", 20, 0.001))
		})

		It("queries the index over the lookback period", func() {
			Expect(api.GetMetricStatisticsCallCount()).To(Equal(2))

			_, input, _ := api.GetMetricStatisticsArgsForCall(0)
			Expect(aws.ToString(input.Namespace)).To(Equal("AWS/DynamoDB"))
			Expect(aws.ToString(input.MetricName)).To(Equal(metric.ConsumedReadCapacityUnits))
			Expect(aws.ToTime(input.EndTime)).To(Equal(now))
			Expect(aws.ToTime(input.StartTime)).To(Equal(now.Add(-5 * time.Minute)))
			Expect(aws.ToInt32(input.Period)).To(Equal(int32(300)))
			Expect(input.Dimensions).To(ConsistOf(
				cwtypes.Dimension{Name: aws.String("TableName"), Value: aws.String("orders")},
				cwtypes.Dimension{Name: aws.String("GlobalSecondaryIndexName"), Value: aws.String("by_customer")},
			))

			_, input, _ = api.GetMetricStatisticsArgsForCall(1)
			Expect(aws.ToString(input.MetricName)).To(Equal(metric.ConsumedWriteCapacityUnits))
		})
	})

	Context("when consumption exceeds the provisioned units", func() {
		BeforeEach(func() {
			api.GetMetricStatisticsReturns(sumOf(90000), nil)
		})

		It("caps at 100 percent", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(metrics.ConsumedReadPercent).To(Equal(100.0))
			Expect(metrics.ConsumedWritePercent).To(Equal(100.0))
		})
	})

	Context("when there are no datapoints", func() {
		BeforeEach(func() {
			api.GetMetricStatisticsReturns(sumOf(), nil)
		})

		It("reports zero consumption", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(metrics).To(Equal(models.ConsumptionMetrics{}))
		})
	})

	Context("when nothing is provisioned", func() {
		BeforeEach(func() {
			capacity.GetProvisionedCapacityReturns(models.ProvisionedCapacity{}, nil)
			api.GetMetricStatisticsReturns(sumOf(300), nil)
		})

		It("reports zero consumption", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(metrics).To(Equal(models.ConsumptionMetrics{}))
		})
	})

	Context("when cloudwatch fails", func() {
		BeforeEach(func() {
			api.GetMetricStatisticsReturns(nil, errors.New("throttled"))
		})

		It("returns the error", func() {
			Expect(err).To(MatchError(ContainSubstring("throttled")))
		})
	})

	Context("when cloudwatch does not answer", func() {
		BeforeEach(func() {
			api.GetMetricStatisticsStub = func(ctx context.Context, _ *cloudwatch.GetMetricStatisticsInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.GetMetricStatisticsOutput, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}
			fetcher = metric.NewCloudWatchFetcher(lagertest.NewTestLogger("fetcher"), api, capacity, limiter, clock, 5*time.Minute, 20*time.Millisecond)
		})

		It("gives up after the request timeout", func() {
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(api.GetMetricStatisticsCallCount()).To(Equal(1))
		})

		It("bounds the call with a deadline", func() {
			ctx, _, _ := api.GetMetricStatisticsArgsForCall(0)
			deadline, ok := ctx.Deadline()
			Expect(ok).To(BeTrue())
			Expect(deadline).To(BeTemporally("<=", time.Now()))
		})
	})

	Context("when the capacity cannot be read", func() {
		BeforeEach(func() {
			capacity.GetProvisionedCapacityReturns(models.ProvisionedCapacity{}, models.ErrNotFound)
		})

		It("does not query cloudwatch", func() {
			Expect(models.IsNotFound(err)).To(BeTrue())
			Expect(api.GetMetricStatisticsCallCount()).To(BeZero())
		})
	})
})
