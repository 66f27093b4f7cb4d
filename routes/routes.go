package routes

import (
	"github.com/gorilla/mux"

	"net/http"
)

const (
	ScalingHistoriesPath         = "/v1/tables/{table}/scaling_histories"
	GetScalingHistoriesRouteName = "GetScalingHistories"

	EvaluatePath      = "/v1/tables/{table}/evaluate"
	EvaluateRouteName = "Evaluate"
)

type AutoScalerRoute struct {
	scalingEngineRoutes *mux.Router
}

var autoScalerRouteInstance *AutoScalerRoute = newRouters()

func newRouters() *AutoScalerRoute {
	instance := &AutoScalerRoute{
		scalingEngineRoutes: mux.NewRouter(),
	}

	instance.scalingEngineRoutes.Path(ScalingHistoriesPath).Methods(http.MethodGet).Name(GetScalingHistoriesRouteName)
	instance.scalingEngineRoutes.Path(EvaluatePath).Methods(http.MethodPost).Name(EvaluateRouteName)

	return instance
}

// ScalingEngineRoutes is shared. Servers must register handlers on a
// NewScalingEngineRouter instead when they add middleware.
func ScalingEngineRoutes() *mux.Router {
	return autoScalerRouteInstance.scalingEngineRoutes
}

func NewScalingEngineRouter() *mux.Router {
	return newRouters().scalingEngineRoutes
}
