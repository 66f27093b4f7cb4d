package models_test

import (
	"github.com/gsiscaler/autoscaler/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"
)

var _ = Describe("Health Config", func() {
	var (
		healthConfigBytes []byte
		healthConfig      models.HealthConfig
		err               error
	)

	Context("when unmarshalled from yaml", func() {
		BeforeEach(func() {
			healthConfigBytes = []byte(`
port: 9999
basic_auth:
  username: test-username
  password: password
readiness_enabled: true
`)
		})

		It("should have config set", func() {
			err = yaml.Unmarshal(healthConfigBytes, &healthConfig)
			Expect(err).NotTo(HaveOccurred())
			Expect(healthConfig).To(Equal(models.HealthConfig{
				Port: 9999,
				BasicAuth: models.BasicAuth{
					Username: "test-username",
					Password: "password",
				},
				ReadinessCheckEnabled: true,
			}))
			Expect(healthConfig.BasicAuth.Enabled()).To(BeTrue())
			Expect(healthConfig.Validate()).To(Succeed())
		})
	})

	Describe("Validate", func() {
		BeforeEach(func() {
			healthConfig = models.HealthConfig{Port: 8081}
		})

		It("accepts a config without basic auth", func() {
			Expect(healthConfig.BasicAuth.Enabled()).To(BeFalse())
			Expect(healthConfig.Validate()).To(Succeed())
		})

		It("rejects username together with username_hash", func() {
			healthConfig.BasicAuth = models.BasicAuth{Username: "user", UsernameHash: "hash", Password: "pass"}
			Expect(healthConfig.Validate()).To(MatchError(models.ErrConfiguration))
		})

		It("rejects a username_hash that is not bcrypt", func() {
			healthConfig.BasicAuth = models.BasicAuth{UsernameHash: "not-a-hash", Password: "pass"}
			Expect(healthConfig.Validate()).To(MatchError(ContainSubstring("username_hash is not a valid bcrypt hash")))
		})

		It("rejects a password without username", func() {
			healthConfig.BasicAuth = models.BasicAuth{Password: "pass"}
			Expect(healthConfig.Validate()).To(MatchError(ContainSubstring("healthcheck username is empty")))
		})

		It("rejects a username without password", func() {
			healthConfig.BasicAuth = models.BasicAuth{Username: "user"}
			Expect(healthConfig.Validate()).To(MatchError(ContainSubstring("healthcheck password is empty")))
		})
	})
})
