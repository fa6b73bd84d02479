package httpapi

import (
	"encoding/json"
	"net/http"
)

// Error codes returned in the error envelope.
const (
	CodeBadRequest  = "BAD_REQUEST"
	CodeNotFound    = "NOT_FOUND"
	CodeRateLimited = "TOO_MANY_REQUESTS"
	CodeInternal    = "INTERNAL_SERVER_ERROR"
)

// SuccessEnvelope wraps every successful response.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope wraps every error response.
type ErrorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes data in a success envelope.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, SuccessEnvelope{Data: data})
}

// Error writes an error envelope.
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorEnvelope{Error: message, Code: code})
}
