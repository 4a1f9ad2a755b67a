// Package httputil provides the JSON response helpers used by every API
// handler. Error responses share one envelope: {"error": "..."}.
//
// Status mapping follows the app-wide taxonomy:
//   - 401 missing/invalid/expired credential (one uniform message)
//   - 400 validation failures and duplicate signup
//   - 429 rate-limited login/signup attempts
//   - 404 target absent (used narrowly; most misses are silent no-ops)
//   - 500 storage failures, logged server-side, generic body
package httputil

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse is the error envelope sent to clients.
type ErrorResponse struct {
	Error string `json:"error"`
}

// successResponse mirrors the {"success": true} bodies the original API
// client expects for mutating operations.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the shared error envelope with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorResponse{Error: msg})
}

// OKMessage writes a 200 {"success": ..., "message": ...} body.
func OKMessage(w http.ResponseWriter, success bool, msg string) {
	JSON(w, http.StatusOK, successResponse{Success: success, Message: msg})
}

// Internal logs a storage or other unexpected failure and sends a generic
// 500 to the client. Internal detail never reaches the response body.
func Internal(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	if log != nil {
		log.Error(op+" failed", zap.Error(err))
	}
	Error(w, http.StatusInternalServerError, "internal server error")
}

// Unauthorized writes the uniform 401 response. Expired, malformed, and
// missing credentials are deliberately indistinguishable here.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "unauthorized")
}
