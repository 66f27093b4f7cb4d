package scalingengine_test

import (
	"context"
	"errors"
	"time"

	"github.com/gsiscaler/autoscaler/fakes"
	"github.com/gsiscaler/autoscaler/models"
	. "github.com/gsiscaler/autoscaler/scalingengine"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gbytes"
)

var _ = Describe("ScalingEngine", func() {
	var (
		logger       *lagertest.TestLogger
		dynamoClient *fakes.FakeDynamoClient
		fetcher      *fakes.FakeFetcher
		policies     *fakes.FakePolicyStore
		gate         *fakes.FakeGate
		historyDB    *fakes.FakeScalingHistoryDB
		collector    *fakes.FakeScalingStatusCollector
		clock        *fakeclock.FakeClock
		dryRun       bool
		engine       ScalingEngine
		policy       models.ScalingPolicy
		index        models.Index
		err          error
	)

	savedStatuses := func() []models.UpdateStatus {
		var statuses []models.UpdateStatus
		for i := 0; i < historyDB.SaveScalingHistoryCallCount(); i++ {
			statuses = append(statuses, historyDB.SaveScalingHistoryArgsForCall(i).Status)
		}
		return statuses
	}

	appliedCapacities := func() []models.ProvisionedCapacity {
		var capacities []models.ProvisionedCapacity
		for i := 0; i < dynamoClient.ApplyCapacityCallCount(); i++ {
			_, _, c := dynamoClient.ApplyCapacityArgsForCall(i)
			capacities = append(capacities, c)
		}
		return capacities
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("scaling-engine-test")
		dynamoClient = &fakes.FakeDynamoClient{}
		fetcher = &fakes.FakeFetcher{}
		policies = &fakes.FakePolicyStore{}
		gate = &fakes.FakeGate{}
		historyDB = &fakes.FakeScalingHistoryDB{}
		collector = &fakes.FakeScalingStatusCollector{}
		clock = fakeclock.NewFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
		dryRun = false

		index = models.Index{TableName: "orders", IndexName: "by_customer"}
		policy = models.ScalingPolicy{
			Reads: models.DimensionPolicy{
				UpperThreshold: 80,
				LowerThreshold: 20,
				Increase:       models.Adjustment{Kind: models.AdjustmentPercent, Amount: 50},
				Decrease:       models.Adjustment{Kind: models.AdjustmentPercent, Amount: 50},
				Min:            1,
				Max:            1000,
			},
			Writes: models.DimensionPolicy{
				UpperThreshold: 80,
				LowerThreshold: 20,
				Increase:       models.Adjustment{Kind: models.AdjustmentPercent, Amount: 50},
				Decrease:       models.Adjustment{Kind: models.AdjustmentPercent, Amount: 50},
				Min:            50,
				Max:            1000,
			},
		}

		policies.ManagesTableReturns(true)
		dynamoClient.ListIndexesReturns([]models.Index{index}, nil)
		dynamoClient.GetProvisionedCapacityReturns(models.ProvisionedCapacity{ReadUnits: 100, WriteUnits: 50}, nil)
		dynamoClient.GetIndexStatusReturns(models.IndexStatusActive, nil)
		fetcher.GetConsumptionMetricsReturns(models.ConsumptionMetrics{ConsumedReadPercent: 95, ConsumedWritePercent: 10}, nil)
	})

	JustBeforeEach(func() {
		policies.GetIndexPolicyReturns(policy, true)
		engine = NewScalingEngine(logger, dynamoClient, fetcher, policies, gate, historyDB, collector, clock, dryRun, 4)
		err = engine.EnsureProvisioning(context.Background(), "orders")
	})

	Context("when reads are above the upper threshold and writes are at their floor", func() {
		It("issues one update with the increased reads and unchanged writes", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(appliedCapacities()).To(Equal([]models.ProvisionedCapacity{{ReadUnits: 150, WriteUnits: 50}}))

			_, appliedIndex, _ := dynamoClient.ApplyCapacityArgsForCall(0)
			Expect(appliedIndex).To(Equal(index))
		})

		It("records the applied update", func() {
			Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusApplied}))
			history := historyDB.SaveScalingHistoryArgsForCall(0)
			Expect(history.TableName).To(Equal("orders"))
			Expect(history.IndexName).To(Equal("by_customer"))
			Expect(history.OldReadUnits).To(Equal(int64(100)))
			Expect(history.NewReadUnits).To(Equal(int64(150)))
			Expect(history.NewWriteUnits).To(Equal(int64(50)))
			Expect(history.Timestamp).To(Equal(clock.Now().UnixNano()))
			Expect(history.Reason).To(ContainSubstring("upper threshold"))

			Expect(collector.RecordUpdateCallCount()).To(Equal(1))
			recordedIndex, status := collector.RecordUpdateArgsForCall(0)
			Expect(recordedIndex).To(Equal(index))
			Expect(status).To(Equal(models.UpdateStatusApplied))
			Expect(collector.ObserveEvaluationCallCount()).To(Equal(1))
		})

		It("logs the decision", func() {
			Expect(logger.Buffer()).To(Say("scaling-engine-test.scaling-engine.ensure-provisioning.decision"))
			Expect(logger.Buffer()).To(Say("capacity-applied"))
		})

		It("exposes the proposed capacity", func() {
			Expect(collector.SetProposedCapacityCallCount()).To(Equal(1))
			_, proposed := collector.SetProposedCapacityArgsForCall(0)
			Expect(proposed).To(Equal(models.ProvisionedCapacity{ReadUnits: 150, WriteUnits: 50}))
		})
	})

	Context("when the table is not configured", func() {
		BeforeEach(func() {
			policies.ManagesTableReturns(false)
		})

		It("does nothing", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(gate.IsOpenCallCount()).To(Equal(0))
			Expect(dynamoClient.Invocations()).To(BeEmpty())
		})
	})

	Context("when the circuit breaker is open", func() {
		BeforeEach(func() {
			gate.IsOpenReturns(true)
		})

		It("makes no remote calls and logs no changes", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(dynamoClient.Invocations()).To(BeEmpty())
			Expect(fetcher.GetConsumptionMetricsCallCount()).To(Equal(0))
			Expect(historyDB.SaveScalingHistoryCallCount()).To(Equal(0))
			Expect(logger.Buffer()).To(Say("circuit-breaker-open"))
			Expect(logger.Buffer()).NotTo(Say("decision"))
		})
	})

	Context("when the table no longer exists", func() {
		BeforeEach(func() {
			dynamoClient.ListIndexesReturns(nil, models.ErrNotFound)
		})

		It("reports nothing to do", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(dynamoClient.GetProvisionedCapacityCallCount()).To(Equal(0))
			Expect(logger.Buffer()).To(Say("table-not-found"))
		})
	})

	Context("when the table has no global secondary indexes", func() {
		BeforeEach(func() {
			dynamoClient.ListIndexesReturns(nil, nil)
		})

		It("reports nothing to do", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(dynamoClient.GetProvisionedCapacityCallCount()).To(Equal(0))
		})
	})

	Context("when listing the indexes fails", func() {
		BeforeEach(func() {
			dynamoClient.ListIndexesReturns(nil, errors.New("connection reset"))
		})

		It("returns the error", func() {
			Expect(err).To(MatchError(ContainSubstring("connection reset")))
		})
	})

	Context("when the index has no policy", func() {
		JustBeforeEach(func() {
			policies.GetIndexPolicyReturns(models.ScalingPolicy{}, false)
			err = engine.EnsureProvisioning(context.Background(), "orders")
		})

		It("skips the index", func() {
			Expect(err).NotTo(HaveOccurred())
			// only the first evaluation had a policy
			Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(1))
		})
	})

	Context("when consumption is within thresholds", func() {
		BeforeEach(func() {
			fetcher.GetConsumptionMetricsReturns(models.ConsumptionMetrics{ConsumedReadPercent: 50, ConsumedWritePercent: 50}, nil)
		})

		It("never calls the updater", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(dynamoClient.GetIndexStatusCallCount()).To(Equal(0))
			Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(0))
			Expect(historyDB.SaveScalingHistoryCallCount()).To(Equal(0))
		})
	})

	Context("when the index is not active", func() {
		BeforeEach(func() {
			dynamoClient.GetIndexStatusReturns("UPDATING", nil)
		})

		It("skips without error", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(0))
			Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusSkippedNotActive}))
			Expect(historyDB.SaveScalingHistoryArgsForCall(0).Message).To(Equal("index status is UPDATING"))
			Expect(logger.Buffer()).To(Say("index-not-active"))
		})
	})

	Context("when getting the index status fails", func() {
		BeforeEach(func() {
			dynamoClient.GetIndexStatusReturns("", errors.New("throttled"))
		})

		It("returns the error and records the failure", func() {
			Expect(err).To(MatchError(ContainSubstring("throttled")))
			Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusFailed}))
		})
	})

	Context("with maintenance windows", func() {
		Context("when the current time is outside every window", func() {
			BeforeEach(func() {
				policy.MaintenanceWindows = "00:00-01:00,10:00-11:00"
			})

			It("skips without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(0))
				Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusSkippedWindow}))
			})
		})

		Context("when the current time is inside a window", func() {
			BeforeEach(func() {
				policy.MaintenanceWindows = "00:00-01:00,11:30-12:30"
			})

			It("applies the update", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(1))
			})
		})

		Context("when a window is malformed", func() {
			BeforeEach(func() {
				policy.MaintenanceWindows = "0900-1000"
			})

			It("fails closed with a configuration error", func() {
				Expect(errors.Is(err, models.ErrConfiguration)).To(BeTrue())
				Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(0))
				Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusFailed}))
			})
		})
	})

	Context("when reads and writes must decrease together", func() {
		BeforeEach(func() {
			policy.AlwaysDecreaseRWTogether = true
			policy.Writes.Min = 1
			fetcher.GetConsumptionMetricsReturns(models.ConsumptionMetrics{ConsumedReadPercent: 10, ConsumedWritePercent: 50}, nil)
		})

		Context("and only reads qualify for a decrease", func() {
			It("keeps the actual capacity and issues no update", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(0))
				Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusSkippedUnchanged}))

				history := historyDB.SaveScalingHistoryArgsForCall(0)
				Expect(history.NewReadUnits).To(Equal(int64(100)))
				Expect(history.NewWriteUnits).To(Equal(int64(50)))
				Expect(history.Message).To(Equal("reads and writes must be decreased together"))
			})
		})

		Context("and writes are already at their floor", func() {
			BeforeEach(func() {
				dynamoClient.GetProvisionedCapacityReturns(models.ProvisionedCapacity{ReadUnits: 100, WriteUnits: 1}, nil)
			})

			It("decreases reads", func() {
				Expect(appliedCapacities()).To(Equal([]models.ProvisionedCapacity{{ReadUnits: 50, WriteUnits: 1}}))
			})
		})

		Context("and only writes qualify for a decrease", func() {
			BeforeEach(func() {
				fetcher.GetConsumptionMetricsReturns(models.ConsumptionMetrics{ConsumedReadPercent: 50, ConsumedWritePercent: 10}, nil)
			})

			It("reverts the writes and issues no update", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(appliedCapacities()).To(BeEmpty())
				Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusSkippedUnchanged}))

				history := historyDB.SaveScalingHistoryArgsForCall(0)
				Expect(history.NewReadUnits).To(Equal(int64(100)))
				Expect(history.NewWriteUnits).To(Equal(int64(50)))
				Expect(history.Message).To(Equal("reads and writes must be decreased together"))
			})

			Context("and reads are already at their floor", func() {
				BeforeEach(func() {
					dynamoClient.GetProvisionedCapacityReturns(models.ProvisionedCapacity{ReadUnits: 1, WriteUnits: 50}, nil)
				})

				It("decreases writes", func() {
					Expect(appliedCapacities()).To(Equal([]models.ProvisionedCapacity{{ReadUnits: 1, WriteUnits: 25}}))
					Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusApplied}))
				})
			})
		})

		Context("and reads decrease while writes increase", func() {
			BeforeEach(func() {
				fetcher.GetConsumptionMetricsReturns(models.ConsumptionMetrics{ConsumedReadPercent: 10, ConsumedWritePercent: 95}, nil)
			})

			It("reverts the reads and applies only the write increase", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(appliedCapacities()).To(Equal([]models.ProvisionedCapacity{{ReadUnits: 100, WriteUnits: 75}}))
				Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusApplied}))

				history := historyDB.SaveScalingHistoryArgsForCall(0)
				Expect(history.OldReadUnits).To(Equal(int64(100)))
				Expect(history.NewReadUnits).To(Equal(int64(100)))
				Expect(history.NewWriteUnits).To(Equal(int64(75)))
			})
		})

		Context("and both dimensions decrease", func() {
			BeforeEach(func() {
				fetcher.GetConsumptionMetricsReturns(models.ConsumptionMetrics{ConsumedReadPercent: 10, ConsumedWritePercent: 10}, nil)
			})

			It("decreases both", func() {
				Expect(appliedCapacities()).To(Equal([]models.ProvisionedCapacity{{ReadUnits: 50, WriteUnits: 25}}))
			})
		})

		Context("and coupling is disabled", func() {
			BeforeEach(func() {
				policy.AlwaysDecreaseRWTogether = false
			})

			It("decreases reads alone", func() {
				Expect(appliedCapacities()).To(Equal([]models.ProvisionedCapacity{{ReadUnits: 50, WriteUnits: 50}}))
			})
		})
	})

	Context("when running in dry run mode", func() {
		BeforeEach(func() {
			dryRun = true
		})

		It("records the change without applying it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(0))
			Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusDryRun}))
			Expect(historyDB.SaveScalingHistoryArgsForCall(0).NewReadUnits).To(Equal(int64(150)))
		})
	})

	Context("when the capacity changed since the decision", func() {
		BeforeEach(func() {
			dynamoClient.GetProvisionedCapacityReturnsOnCall(0, models.ProvisionedCapacity{ReadUnits: 100, WriteUnits: 50}, nil)
			dynamoClient.GetProvisionedCapacityReturnsOnCall(1, models.ProvisionedCapacity{ReadUnits: 150, WriteUnits: 50}, nil)
		})

		It("skips the unchanged update", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(0))
			Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusSkippedUnchanged}))
		})
	})

	Context("when the update is rejected", func() {
		limitExceeded := models.NewCapacityRejection(models.RejectionLimitExceeded, "LimitExceededException", "too many decreases")

		Context("with limit_exceeded and both dimensions increasing", func() {
			BeforeEach(func() {
				fetcher.GetConsumptionMetricsReturns(models.ConsumptionMetrics{ConsumedReadPercent: 95, ConsumedWritePercent: 95}, nil)
				dynamoClient.ApplyCapacityReturnsOnCall(0, limitExceeded)
			})

			It("retries exactly once changing only reads", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(appliedCapacities()).To(Equal([]models.ProvisionedCapacity{
					{ReadUnits: 150, WriteUnits: 75},
					{ReadUnits: 150, WriteUnits: 50},
				}))
				Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusRejectedRetried, models.UpdateStatusApplied}))
				Expect(logger.Buffer()).To(Say("capacity-limit-exceeded-splitting-update"))
			})

			Context("and the retry is rejected too", func() {
				BeforeEach(func() {
					dynamoClient.ApplyCapacityReturnsOnCall(1, limitExceeded)
				})

				It("stops after the single retry without error", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(2))
					Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusRejectedRetried, models.UpdateStatusRejectedTerminal}))
				})
			})
		})

		Context("with limit_exceeded and only writes increasing", func() {
			BeforeEach(func() {
				policy.Reads.Min = 1
				fetcher.GetConsumptionMetricsReturns(models.ConsumptionMetrics{ConsumedReadPercent: 10, ConsumedWritePercent: 95}, nil)
				dynamoClient.ApplyCapacityReturnsOnCall(0, limitExceeded)
			})

			It("retries with the increased dimension and the actual value of the other", func() {
				Expect(appliedCapacities()).To(Equal([]models.ProvisionedCapacity{
					{ReadUnits: 50, WriteUnits: 75},
					{ReadUnits: 100, WriteUnits: 75},
				}))
			})
		})

		Context("with limit_exceeded on a single dimension change", func() {
			BeforeEach(func() {
				dynamoClient.ApplyCapacityReturns(limitExceeded)
			})

			It("does not retry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(1))
				Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusRejectedTerminal}))
			})
		})

		DescribeTable("terminal categories",
			func(category models.RejectionCategory) {
				dynamoClient.ApplyCapacityReturns(models.NewCapacityRejection(category, "Code", "message"))
				err = engine.EnsureProvisioning(context.Background(), "orders")

				Expect(err).NotTo(HaveOccurred())
				Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(2))
				Expect(savedStatuses()[1]).To(Equal(models.UpdateStatusRejectedTerminal))
				Expect(logger.Buffer()).To(Say("capacity-update-rejected"))
			},
			Entry("validation", models.RejectionValidation),
			Entry("resource busy", models.RejectionResourceBusy),
			Entry("access denied", models.RejectionAccessDenied),
		)

		Context("with an unrecognized category", func() {
			BeforeEach(func() {
				dynamoClient.ApplyCapacityReturns(models.NewCapacityRejection(models.RejectionUnrecognized, "InternalServerError", "boom"))
			})

			It("escalates the error", func() {
				var rejection *models.CapacityRejection
				Expect(errors.As(err, &rejection)).To(BeTrue())
				Expect(rejection.Code).To(Equal("InternalServerError"))
				Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusFailed}))
			})
		})

		Context("with a transport error", func() {
			BeforeEach(func() {
				dynamoClient.ApplyCapacityReturns(errors.New("connection refused"))
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(ContainSubstring("connection refused")))
				Expect(savedStatuses()).To(Equal([]models.UpdateStatus{models.UpdateStatusFailed}))
			})
		})
	})

	Context("when one of several indexes fails", func() {
		BeforeEach(func() {
			dynamoClient.ListIndexesReturns([]models.Index{
				{TableName: "orders", IndexName: "broken"},
				index,
			}, nil)
			dynamoClient.GetProvisionedCapacityStub = func(_ context.Context, i models.Index) (models.ProvisionedCapacity, error) {
				if i.IndexName == "broken" {
					return models.ProvisionedCapacity{}, errors.New("broken index")
				}
				return models.ProvisionedCapacity{ReadUnits: 100, WriteUnits: 50}, nil
			}
		})

		It("still evaluates the sibling index and returns the error", func() {
			Expect(err).To(MatchError(ContainSubstring("orders/broken: broken index")))
			Expect(appliedCapacities()).To(Equal([]models.ProvisionedCapacity{{ReadUnits: 150, WriteUnits: 50}}))
		})
	})

	Context("when saving the history fails", func() {
		BeforeEach(func() {
			historyDB.SaveScalingHistoryReturns(errors.New("db down"))
		})

		It("still applies the update", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(dynamoClient.ApplyCapacityCallCount()).To(Equal(1))
			Expect(logger.Buffer()).To(Say("failed-to-save-scaling-history"))
		})
	})
})
