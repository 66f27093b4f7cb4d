package routes_test

import (
	"github.com/gsiscaler/autoscaler/routes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Routes", func() {
	var testTable = "orders"

	Describe("ScalingEngineRoutes", func() {
		Context("GetScalingHistoriesRoute", func() {
			Context("when provide correct route variable", func() {
				It("should return the correct path", func() {
					path, err := routes.ScalingEngineRoutes().Get(routes.GetScalingHistoriesRouteName).URLPath("table", testTable)
					Expect(err).NotTo(HaveOccurred())
					Expect(path.Path).To(Equal("/v1/tables/" + testTable + "/scaling_histories"))
				})
			})

			Context("when provide wrong route variable", func() {
				It("should return error", func() {
					_, err := routes.ScalingEngineRoutes().Get(routes.GetScalingHistoriesRouteName).URLPath("wrongVariable", testTable)
					Expect(err).To(HaveOccurred())
				})
			})

			Context("when provide not enough route variable", func() {
				It("should return error", func() {
					_, err := routes.ScalingEngineRoutes().Get(routes.GetScalingHistoriesRouteName).URLPath()
					Expect(err).To(HaveOccurred())
				})
			})
		})

		Context("EvaluateRoute", func() {
			Context("when provide correct route variable", func() {
				It("should return the correct path", func() {
					path, err := routes.ScalingEngineRoutes().Get(routes.EvaluateRouteName).URLPath("table", testTable)
					Expect(err).NotTo(HaveOccurred())
					Expect(path.Path).To(Equal("/v1/tables/" + testTable + "/evaluate"))
				})
			})

			Context("when provide wrong route variable", func() {
				It("should return error", func() {
					_, err := routes.ScalingEngineRoutes().Get(routes.EvaluateRouteName).URLPath("wrongVariable", testTable)
					Expect(err).To(HaveOccurred())
				})
			})
		})
	})

	Describe("NewScalingEngineRouter", func() {
		It("returns an independent router with the same routes", func() {
			router := routes.NewScalingEngineRouter()
			Expect(router).NotTo(BeIdenticalTo(routes.ScalingEngineRoutes()))
			Expect(router.Get(routes.EvaluateRouteName)).NotTo(BeNil())
		})
	})
})
