package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gsiscaler/autoscaler/models"

	"code.cloudfoundry.org/lager/v3"
)

func WriteJSONResponse(logger lager.Logger, w http.ResponseWriter, statusCode int, jsonObj interface{}) {
	jsonBytes, err := json.Marshal(jsonObj)
	if err != nil {
		logger.Error("marshal-json-response", err, lager.Data{"statusCode": statusCode})
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(jsonBytes)))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err = w.Write(jsonBytes); err != nil {
		logger.Error("write-json-response", err)
	}
}

func WriteErrorResponse(logger lager.Logger, w http.ResponseWriter, statusCode int, message string) {
	WriteJSONResponse(logger, w, statusCode, models.ErrorResponse{
		Code:    http.StatusText(statusCode),
		Message: message,
	})
}
