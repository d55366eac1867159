package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"takeaway/middleware"
	"takeaway/order-svc/internal/domain"
)

// envelope is the body of every API response. Code mirrors the HTTP status.
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

func ok(w http.ResponseWriter, data interface{}, message string) {
	writeJSON(w, http.StatusOK, data, message)
}

func fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, nil, err.Error())
	case errors.Is(err, domain.ErrInvalidOrder),
		errors.Is(err, domain.ErrInvalidUser),
		errors.Is(err, domain.ErrDuplicatePhone):
		writeJSON(w, http.StatusBadRequest, nil, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, nil, err.Error())
	default:
		middleware.Log(r).WithError(err).WithField("path", r.URL.Path).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, nil, err.Error())
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, nil, "invalid request body: "+err.Error())
		return false
	}
	return true
}
