package server

import (
	"net/http"
	"strconv"

	"github.com/gsiscaler/autoscaler/db"
	"github.com/gsiscaler/autoscaler/helpers/handlers"
	"github.com/gsiscaler/autoscaler/models"
	"github.com/gsiscaler/autoscaler/scalingengine"

	"code.cloudfoundry.org/lager/v3"
)

const maxHistoryLimit = 1000

type TableFilter interface {
	ManagesTable(tableName string) bool
}

type EvaluationResult struct {
	Table string `json:"table"`
	Error string `json:"error,omitempty"`
}

type ScalingHandler struct {
	logger        lager.Logger
	historyDB     db.ScalingHistoryDB
	scalingEngine scalingengine.ScalingEngine
	tables        TableFilter
}

func NewScalingHandler(logger lager.Logger, historyDB db.ScalingHistoryDB, scalingEngine scalingengine.ScalingEngine, tables TableFilter) *ScalingHandler {
	return &ScalingHandler{
		logger:        logger.Session("scaling-handler"),
		historyDB:     historyDB,
		scalingEngine: scalingEngine,
		tables:        tables,
	}
}

func (h *ScalingHandler) Evaluate(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	table := vars["table"]
	logger := h.logger.Session("evaluate", lager.Data{"table": table})

	if !h.tables.ManagesTable(table) {
		logger.Info("table-not-configured")
		handlers.WriteErrorResponse(logger, w, http.StatusNotFound, "Table is not configured for autoscaling")
		return
	}

	err := h.scalingEngine.EnsureProvisioning(r.Context(), table)
	if err != nil {
		logger.Error("failed-to-ensure-provisioning", err)
		handlers.WriteJSONResponse(logger, w, http.StatusInternalServerError, EvaluationResult{Table: table, Error: err.Error()})
		return
	}
	handlers.WriteJSONResponse(logger, w, http.StatusOK, EvaluationResult{Table: table})
}

func (h *ScalingHandler) GetScalingHistories(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	table := vars["table"]
	logger := h.logger.Session("get-scaling-histories", lager.Data{"table": table})

	query := r.URL.Query()
	logger.Debug("handling", lager.Data{"query": query})

	historyQuery := db.HistoryQuery{
		TableName: table,
		IndexName: query.Get("index"),
		Start:     0,
		End:       -1,
		Order:     db.DESC,
		Limit:     maxHistoryLimit,
	}

	var err error
	if v := query.Get("start"); v != "" {
		historyQuery.Start, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			logger.Error("failed-to-parse-start-time", err, lager.Data{"start": v})
			handlers.WriteErrorResponse(logger, w, http.StatusBadRequest, "Error parsing start time")
			return
		}
	}

	if v := query.Get("end"); v != "" {
		historyQuery.End, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			logger.Error("failed-to-parse-end-time", err, lager.Data{"end": v})
			handlers.WriteErrorResponse(logger, w, http.StatusBadRequest, "Error parsing end time")
			return
		}
	}

	historyQuery.Order, err = db.ParseOrderType(query.Get("order"))
	if err != nil {
		logger.Error("failed-to-parse-order", err, lager.Data{"order": query.Get("order")})
		handlers.WriteErrorResponse(logger, w, http.StatusBadRequest, "Incorrect order parameter in query string, the value can only be ASC or DESC")
		return
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 || limit > maxHistoryLimit {
			logger.Info("invalid-limit", lager.Data{"limit": v})
			handlers.WriteErrorResponse(logger, w, http.StatusBadRequest, "Incorrect limit parameter in query string, the value must be between 1 and "+strconv.Itoa(maxHistoryLimit))
			return
		}
		historyQuery.Limit = limit
	}

	histories, err := h.historyDB.RetrieveScalingHistories(r.Context(), historyQuery)
	if err != nil {
		logger.Error("failed-to-retrieve-histories", err, lager.Data{"query": historyQuery})
		handlers.WriteErrorResponse(logger, w, http.StatusInternalServerError, "Error getting scaling histories from database")
		return
	}
	if histories == nil {
		histories = []*models.ScalingHistory{}
	}
	handlers.WriteJSONResponse(logger, w, http.StatusOK, histories)
}
