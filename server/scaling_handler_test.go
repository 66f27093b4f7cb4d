package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gsiscaler/autoscaler/db"
	"github.com/gsiscaler/autoscaler/fakes"
	"github.com/gsiscaler/autoscaler/healthendpoint"
	"github.com/gsiscaler/autoscaler/helpers"
	"github.com/gsiscaler/autoscaler/models"
	. "github.com/gsiscaler/autoscaler/server"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ScalingHandler", func() {
	var (
		historyDB     *fakes.FakeScalingHistoryDB
		scalingEngine *fakes.FakeScalingEngine
		policies      *fakes.FakePolicyStore
		conf          helpers.ServerConfig
		router        *mux.Router
		resp          *httptest.ResponseRecorder
		req           *http.Request
	)

	BeforeEach(func() {
		historyDB = &fakes.FakeScalingHistoryDB{}
		scalingEngine = &fakes.FakeScalingEngine{}
		policies = &fakes.FakePolicyStore{}
		policies.ManagesTableReturns(true)
		conf = helpers.ServerConfig{}
		resp = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/v1/tables/orders/scaling_histories", nil)
	})

	JustBeforeEach(func() {
		var err error
		router, err = NewRouter(lagertest.NewTestLogger("scaling-handler-test"), conf, historyDB, scalingEngine, policies,
			healthendpoint.NewHTTPStatusCollector("gsiscaler", "test"))
		Expect(err).NotTo(HaveOccurred())
		router.ServeHTTP(resp, req)
	})

	Describe("GetScalingHistories", func() {
		var histories []*models.ScalingHistory

		BeforeEach(func() {
			histories = []*models.ScalingHistory{
				{TableName: "orders", IndexName: "by_customer", Timestamp: 333, Status: models.UpdateStatusApplied, OldReadUnits: 100, NewReadUnits: 150, OldWriteUnits: 50, NewWriteUnits: 50, Reason: "a reason"},
				{TableName: "orders", IndexName: "by_customer", Timestamp: 222, Status: models.UpdateStatusSkippedWindow, Message: "outside maintenance windows"},
			}
			historyDB.RetrieveScalingHistoriesReturns(histories, nil)
		})

		Context("when all query parameters are valid", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/v1/tables/orders/scaling_histories?index=by_customer&start=123&end=567&order=ASC&limit=10", nil)
			})

			It("queries the database with them", func() {
				Expect(historyDB.RetrieveScalingHistoriesCallCount()).To(Equal(1))
				_, query := historyDB.RetrieveScalingHistoriesArgsForCall(0)
				Expect(query).To(Equal(db.HistoryQuery{
					TableName: "orders",
					IndexName: "by_customer",
					Start:     123,
					End:       567,
					Order:     db.ASC,
					Limit:     10,
				}))
			})

			It("returns the histories", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				var result []*models.ScalingHistory
				Expect(json.Unmarshal(resp.Body.Bytes(), &result)).To(Succeed())
				Expect(result).To(Equal(histories))
			})
		})

		Context("when no query parameters are given", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/v1/tables/orders/scaling_histories", nil)
			})

			It("uses the defaults", func() {
				_, query := historyDB.RetrieveScalingHistoriesArgsForCall(0)
				Expect(query).To(Equal(db.HistoryQuery{TableName: "orders", Start: 0, End: -1, Order: db.DESC, Limit: 1000}))
			})
		})

		Context("when there are no histories", func() {
			BeforeEach(func() {
				historyDB.RetrieveScalingHistoriesReturns(nil, nil)
				req = httptest.NewRequest(http.MethodGet, "/v1/tables/orders/scaling_histories", nil)
			})

			It("returns an empty list", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				Expect(resp.Body.String()).To(Equal("[]"))
			})
		})

		DescribeTable("invalid query parameters",
			func(query string, message string) {
				resp = httptest.NewRecorder()
				router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/tables/orders/scaling_histories?"+query, nil))

				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				errJson := &models.ErrorResponse{}
				Expect(json.Unmarshal(resp.Body.Bytes(), errJson)).To(Succeed())
				Expect(errJson.Code).To(Equal("Bad Request"))
				Expect(errJson.Message).To(ContainSubstring(message))
			},
			Entry("start", "start=abc", "Error parsing start time"),
			Entry("end", "end=abc", "Error parsing end time"),
			Entry("order", "order=sideways", "Incorrect order parameter"),
			Entry("zero limit", "limit=0", "Incorrect limit parameter"),
			Entry("too large limit", "limit=1001", "Incorrect limit parameter"),
		)

		Context("when the database fails", func() {
			BeforeEach(func() {
				historyDB.RetrieveScalingHistoriesReturns(nil, errors.New("database error"))
				req = httptest.NewRequest(http.MethodGet, "/v1/tables/orders/scaling_histories", nil)
			})

			It("returns 500", func() {
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(resp.Body.String()).To(ContainSubstring("Error getting scaling histories from database"))
			})
		})
	})

	Describe("Evaluate", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/v1/tables/orders/evaluate", nil)
		})

		It("evaluates the table", func() {
			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body.String()).To(MatchJSON(`{"table":"orders"}`))
			Expect(scalingEngine.EnsureProvisioningCallCount()).To(Equal(1))
			_, table := scalingEngine.EnsureProvisioningArgsForCall(0)
			Expect(table).To(Equal("orders"))
		})

		Context("when the table is not configured", func() {
			BeforeEach(func() {
				policies.ManagesTableReturns(false)
			})

			It("returns 404", func() {
				Expect(resp.Code).To(Equal(http.StatusNotFound))
				Expect(scalingEngine.EnsureProvisioningCallCount()).To(Equal(0))
			})
		})

		Context("when the evaluation fails", func() {
			BeforeEach(func() {
				scalingEngine.EnsureProvisioningStub = func(context.Context, string) error {
					return errors.New("orders/by_customer: InternalServerError: boom")
				}
			})

			It("returns 500 with the error", func() {
				Expect(resp.Code).To(Equal(http.StatusInternalServerError))
				Expect(resp.Body.String()).To(MatchJSON(`{"table":"orders","error":"orders/by_customer: InternalServerError: boom"}`))
			})
		})

		Context("when using the wrong method", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/v1/tables/orders/evaluate", nil)
			})

			It("returns 405", func() {
				Expect(resp.Code).To(Equal(http.StatusMethodNotAllowed))
			})
		})
	})

	Context("when basic auth is configured", func() {
		BeforeEach(func() {
			conf.BasicAuth = models.BasicAuth{Username: "user", Password: "secret"}
			req = httptest.NewRequest(http.MethodPost, "/v1/tables/orders/evaluate", nil)
		})

		It("rejects requests without credentials", func() {
			Expect(resp.Code).To(Equal(http.StatusUnauthorized))
			Expect(scalingEngine.EnsureProvisioningCallCount()).To(Equal(0))
		})

		Context("and the credentials are sent", func() {
			BeforeEach(func() {
				req.SetBasicAuth("user", "secret")
			})

			It("accepts the request", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
			})
		})
	})
})
