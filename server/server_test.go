package server_test

import (
	"fmt"
	"net/http"

	"github.com/gsiscaler/autoscaler/fakes"
	"github.com/gsiscaler/autoscaler/healthendpoint"
	"github.com/gsiscaler/autoscaler/helpers"
	"github.com/gsiscaler/autoscaler/routes"
	. "github.com/gsiscaler/autoscaler/server"

	"code.cloudfoundry.org/lager/v3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/ginkgomon_v2"
)

var _ = Describe("Server", func() {
	var (
		server        ifrit.Process
		serverUrl     string
		scalingEngine *fakes.FakeScalingEngine
	)

	BeforeEach(func() {
		port := 22220 + GinkgoParallelProcess()
		policies := &fakes.FakePolicyStore{}
		policies.ManagesTableReturns(true)
		scalingEngine = &fakes.FakeScalingEngine{}

		httpServer, err := NewServer(lager.NewLogger("test"), helpers.ServerConfig{Port: port}, &fakes.FakeScalingHistoryDB{}, scalingEngine, policies,
			healthendpoint.NewHTTPStatusCollector("gsiscaler", "test"))
		Expect(err).NotTo(HaveOccurred())
		server = ginkgomon_v2.Invoke(httpServer)
		serverUrl = fmt.Sprintf("http://localhost:%d", port)
	})

	AfterEach(func() {
		ginkgomon_v2.Interrupt(server)
	})

	It("serves the evaluate route", func() {
		path, err := routes.ScalingEngineRoutes().Get(routes.EvaluateRouteName).URLPath("table", "orders")
		Expect(err).NotTo(HaveOccurred())

		rsp, err := http.Post(serverUrl+path.Path, "application/json", nil)
		Expect(err).NotTo(HaveOccurred())
		defer rsp.Body.Close()
		Expect(rsp.StatusCode).To(Equal(http.StatusOK))
		Expect(scalingEngine.EnsureProvisioningCallCount()).To(Equal(1))
	})

	It("serves the scaling histories route", func() {
		path, err := routes.ScalingEngineRoutes().Get(routes.GetScalingHistoriesRouteName).URLPath("table", "orders")
		Expect(err).NotTo(HaveOccurred())

		rsp, err := http.Get(serverUrl + path.Path)
		Expect(err).NotTo(HaveOccurred())
		defer rsp.Body.Close()
		Expect(rsp.StatusCode).To(Equal(http.StatusOK))
	})

	It("returns 404 for unknown routes", func() {
		rsp, err := http.Get(serverUrl + "/v1/unknown")
		Expect(err).NotTo(HaveOccurred())
		defer rsp.Body.Close()
		Expect(rsp.StatusCode).To(Equal(http.StatusNotFound))
	})
})
