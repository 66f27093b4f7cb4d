package provisioner_test

import (
	"context"
	"time"

	"github.com/gsiscaler/autoscaler/fakes"
	"github.com/gsiscaler/autoscaler/provisioner"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/ginkgomon_v2"
)

var _ = Describe("OperatorRunner", func() {
	var (
		proc           ifrit.Process
		fclock         *fakeclock.FakeClock
		buffer         *gbytes.Buffer
		fakeOperator   *fakes.FakeOperator
		operatorRunner *provisioner.OperatorRunner
	)

	BeforeEach(func() {
		logger := lagertest.NewTestLogger("operator-test")
		buffer = logger.Buffer()
		fclock = fakeclock.NewFakeClock(time.Now())

		fakeOperator = &fakes.FakeOperator{}
		operatorRunner = provisioner.NewOperatorRunner(fakeOperator, TestRefreshInterval, fclock, logger)
	})

	JustBeforeEach(func() {
		proc = ifrit.Invoke(operatorRunner)
		Eventually(buffer).Should(gbytes.Say("started"))
	})

	AfterEach(func() {
		ginkgomon_v2.Kill(proc)
		Eventually(proc.Wait()).Should(Receive(BeNil()))
	})

	Context("when running", func() {
		It("operates after given interval", func() {
			Eventually(fakeOperator.OperateCallCount).Should(Equal(1))

			fclock.WaitForWatcherAndIncrement(TestRefreshInterval)
			Eventually(fakeOperator.OperateCallCount).Should(Equal(2))

			fclock.WaitForWatcherAndIncrement(TestRefreshInterval)
			Eventually(fakeOperator.OperateCallCount).Should(Equal(3))
		})
	})

	Context("when an operation is still in flight", func() {
		var release chan struct{}

		BeforeEach(func() {
			release = make(chan struct{})
			fakeOperator.OperateStub = func(ctx context.Context) {
				select {
				case <-release:
				case <-ctx.Done():
				}
			}
		})

		It("does not start another one", func() {
			Eventually(fakeOperator.OperateCallCount).Should(Equal(1))
			fclock.WaitForWatcherAndIncrement(TestRefreshInterval)
			Consistently(fakeOperator.OperateCallCount).Should(Equal(1))

			close(release)
			Eventually(fakeOperator.OperateCallCount).Should(Equal(2))
		})

		It("cancels it when interrupted", func() {
			Eventually(fakeOperator.OperateCallCount).Should(Equal(1))

			ginkgomon_v2.Kill(proc)
			Eventually(proc.Wait()).Should(Receive(BeNil()))
			Eventually(buffer).Should(gbytes.Say("stopped"))
		})
	})

	Context("when an interrupt is sent", func() {
		It("should stop", func() {
			Eventually(fakeOperator.OperateCallCount).Should(Equal(1))
			fclock.WaitForWatcherAndIncrement(TestRefreshInterval)
			Eventually(fakeOperator.OperateCallCount).Should(Equal(2))

			ginkgomon_v2.Kill(proc)
			Eventually(proc.Wait()).Should(Receive(BeNil()))

			Eventually(buffer).Should(gbytes.Say("stopped"))

			fclock.Increment(TestRefreshInterval)
			Consistently(fakeOperator.OperateCallCount).Should(Equal(2))
		})
	})
})
