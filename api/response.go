package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// Response is the envelope around every API response.
type Response struct {
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
}

// requestID generates a unique request identifier.
func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

func respondOK(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, Response{Status: "ok", RequestID: requestID(), Data: data})
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, Response{Status: "error", RequestID: requestID(), Error: err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
