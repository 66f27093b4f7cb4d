package circuitbreaker_test

import (
	"context"
	"net/http"
	"time"

	"github.com/gsiscaler/autoscaler/circuitbreaker"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Gate", func() {
	var (
		server *ghttp.Server
		logger *lagertest.TestLogger
		conf   circuitbreaker.Config
		gate   circuitbreaker.Gate
		ctx    context.Context
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		logger = lagertest.NewTestLogger("gate-test")
		ctx = context.Background()
		conf = circuitbreaker.Config{
			URL:              server.URL() + "/health",
			Timeout:          time.Second,
			FailureThreshold: 2,
		}
	})

	AfterEach(func() {
		server.Close()
	})

	JustBeforeEach(func() {
		gate = circuitbreaker.NewGate(logger, conf)
	})

	Context("when no url is configured", func() {
		BeforeEach(func() {
			conf.URL = ""
		})

		It("is always closed and calls nothing", func() {
			Expect(gate.IsOpen(ctx)).To(BeFalse())
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})
	})

	Context("when the endpoint answers 200", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/health"),
				ghttp.RespondWith(http.StatusOK, "ok"),
			))
		})

		It("is closed", func() {
			Expect(gate.IsOpen(ctx)).To(BeFalse())
			Expect(server.ReceivedRequests()).To(HaveLen(1))
		})
	})

	Context("when the endpoint answers anything else", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusServiceUnavailable, "down"))
		})

		It("is open", func() {
			Expect(gate.IsOpen(ctx)).To(BeTrue())
			Eventually(logger.Buffer()).Should(gbytes.Say("circuit-breaker-open"))
		})
	})

	Context("when the endpoint cannot be reached", func() {
		BeforeEach(func() {
			conf.URL = "http://127.0.0.1:1/health"
		})

		It("is open", func() {
			Expect(gate.IsOpen(ctx)).To(BeTrue())
		})
	})

	Context("when the endpoint keeps failing", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.RespondWith(http.StatusNotFound, ""),
				ghttp.RespondWith(http.StatusNotFound, ""),
			)
			server.SetAllowUnhandledRequests(true)
		})

		It("stops calling the endpoint once the local breaker trips", func() {
			Expect(gate.IsOpen(ctx)).To(BeTrue())
			Expect(gate.IsOpen(ctx)).To(BeTrue())
			Expect(gate.IsOpen(ctx)).To(BeTrue())
			Expect(server.ReceivedRequests()).To(HaveLen(2))
			Expect(logger.Buffer()).To(gbytes.Say("local-breaker-tripped"))
		})
	})

	Describe("Config.Validate", func() {
		It("accepts a disabled config", func() {
			Expect(circuitbreaker.Config{}.Validate()).To(Succeed())
		})

		It("rejects an invalid url", func() {
			Expect(circuitbreaker.Config{URL: "not a url", Timeout: time.Second, FailureThreshold: 1}.Validate()).
				To(MatchError(ContainSubstring("circuit_breaker.url")))
		})

		It("rejects a zero timeout", func() {
			Expect(circuitbreaker.Config{URL: "http://example.com", FailureThreshold: 1}.Validate()).
				To(MatchError(ContainSubstring("circuit_breaker.timeout")))
		})

		It("rejects a zero failure threshold", func() {
			Expect(circuitbreaker.Config{URL: "http://example.com", Timeout: time.Second}.Validate()).
				To(MatchError(ContainSubstring("circuit_breaker.failure_threshold")))
		})
	})
})
