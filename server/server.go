package server

import (
	"net/http"

	"github.com/gsiscaler/autoscaler/db"
	"github.com/gsiscaler/autoscaler/healthendpoint"
	"github.com/gsiscaler/autoscaler/helpers"
	"github.com/gsiscaler/autoscaler/routes"
	"github.com/gsiscaler/autoscaler/scalingengine"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/tedsuo/ifrit"
)

type VarsFunc func(w http.ResponseWriter, r *http.Request, vars map[string]string)

func (vh VarsFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vh(w, r, vars)
}

func NewServer(logger lager.Logger, conf helpers.ServerConfig, historyDB db.ScalingHistoryDB, scalingEngine scalingengine.ScalingEngine,
	tables TableFilter, httpStatusCollector healthendpoint.HTTPStatusCollector) (ifrit.Runner, error) {
	router, err := NewRouter(logger, conf, historyDB, scalingEngine, tables, httpStatusCollector)
	if err != nil {
		return nil, err
	}
	return helpers.NewHTTPServer(logger, conf, router), nil
}

func NewRouter(logger lager.Logger, conf helpers.ServerConfig, historyDB db.ScalingHistoryDB, scalingEngine scalingengine.ScalingEngine,
	tables TableFilter, httpStatusCollector healthendpoint.HTTPStatusCollector) (*mux.Router, error) {
	basicAuthentication, err := helpers.CreateBasicAuthMiddleware(logger, conf.BasicAuth)
	if err != nil {
		logger.Error("failed-to-create-basic-auth-middleware", err)
		return nil, err
	}

	handler := NewScalingHandler(logger, historyDB, scalingEngine, tables)
	httpStatusCollectMiddleware := healthendpoint.NewHTTPStatusCollectMiddleware(httpStatusCollector)

	r := routes.NewScalingEngineRouter()
	r.Use(httpStatusCollectMiddleware.Collect)
	r.Use(basicAuthentication.Middleware)
	r.Get(routes.GetScalingHistoriesRouteName).Handler(VarsFunc(handler.GetScalingHistories))
	r.Get(routes.EvaluateRouteName).Handler(VarsFunc(handler.Evaluate))
	return r, nil
}
