package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"takeaway/middleware"
	"takeaway/stats-svc/internal/domain"
)

type envelope struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Code: status, Data: data, Message: message})
}

func fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, nil, err.Error())
	case errors.Is(err, domain.ErrInvalidLimit):
		writeJSON(w, http.StatusBadRequest, nil, err.Error())
	default:
		middleware.Log(r).WithError(err).WithField("path", r.URL.Path).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, nil, err.Error())
	}
}
