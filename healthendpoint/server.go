package healthendpoint

import (
	"net/http/pprof"

	"github.com/gsiscaler/autoscaler/helpers"
	"github.com/gsiscaler/autoscaler/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
)

func NewServerWithBasicAuth(conf models.HealthConfig, healthCheckers []Checker, logger lager.Logger, gatherer prometheus.Gatherer, readinessCache *cache.Cache) (ifrit.Runner, error) {
	healthRouter, err := NewHealthRouter(conf, healthCheckers, logger, gatherer, readinessCache)
	if err != nil {
		return nil, err
	}
	return helpers.NewHTTPServer(logger.Session("health-server"), helpers.ServerConfig{Port: conf.Port}, healthRouter), nil
}

// NewHealthRouter serves prometheus metrics on every path. Readiness is never
// authenticated. pprof is only mounted when basic auth is configured.
func NewHealthRouter(conf models.HealthConfig, healthCheckers []Checker, logger lager.Logger, gatherer prometheus.Gatherer, readinessCache *cache.Cache) (*mux.Router, error) {
	promHandler := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})

	router := mux.NewRouter()
	if conf.ReadinessCheckEnabled {
		if readinessCache == nil {
			readinessCache = NewReadinessCache()
		}
		router.Handle("/health/readiness", readiness(healthCheckers, readinessCache))
	}

	if !conf.BasicAuth.Enabled() {
		router.PathPrefix("").Handler(promHandler)
		return router, nil
	}

	basicAuthentication, err := helpers.CreateBasicAuthMiddleware(logger, conf.BasicAuth)
	if err != nil {
		return nil, err
	}

	debug := router.PathPrefix("/debug/pprof").Subrouter()
	debug.Use(basicAuthentication.Middleware)
	debug.Path("/cmdline").HandlerFunc(pprof.Cmdline)
	debug.Path("/profile").HandlerFunc(pprof.Profile)
	debug.Path("/symbol").HandlerFunc(pprof.Symbol)
	debug.Path("/trace").HandlerFunc(pprof.Trace)
	debug.PathPrefix("").HandlerFunc(pprof.Index)

	everything := router.PathPrefix("").Subrouter()
	everything.Use(basicAuthentication.Middleware)
	everything.PathPrefix("").Handler(promHandler)

	return router, nil
}
