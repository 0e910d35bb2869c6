package inspect

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// Error codes carried in the envelope.
const (
	codeNotRunning = "NOT_RUNNING"
	codeBusy       = "BUSY"
	codeTimeout    = "TIMEOUT"
	codeInternal   = "INTERNAL"
)

// Response is the envelope every endpoint writes.
type Response struct {
	Status    string    `json:"status"`
	RequestID string    `json:"request_id"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

func respondOK(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusOK, Response{Status: "ok", RequestID: reqID, Data: data})
}

func respondError(w http.ResponseWriter, reqID string, status int, code, msg string) {
	respondJSON(w, status, Response{
		Status:    "error",
		RequestID: reqID,
		Error:     &APIError{Code: code, Message: msg},
	})
}

func respondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
