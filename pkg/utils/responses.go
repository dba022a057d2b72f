package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"filmorate/pkg/errs"

	"go.uber.org/zap"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, status bool, message string, data, errors any) {
	response := Response{
		Status:  status,
		Message: message,
		Data:    data,
		Errors:  errors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, true, message, data, nil)
}

// ResponseNoContent acknowledges a relationship change with an empty 200.
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, false, message, nil, errors)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, false, message, nil, nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusConflict, false, message, nil, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, false, message, nil, nil)
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindDuplicate, errs.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError writes the response for a failed operation and logs it.
func ResponseError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch StatusFor(err) {
	case http.StatusBadRequest:
		log.Warn(operation+" validation failed", zap.Error(err))
		ResponseBadRequest(w, "Validation failed", errs.ViolationsOf(err))
	case http.StatusNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		ResponseNotFound(w, clientMessage(err))
	case http.StatusConflict:
		log.Warn(operation+" failed - conflict", zap.Error(err))
		ResponseConflict(w, clientMessage(err))
	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		ResponseInternalError(w, "Internal server error")
	}
}

// clientMessage drops the wrapping context added on the way up.
func clientMessage(err error) string {
	var e *errs.Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}
