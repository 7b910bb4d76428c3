package httpx

import (
	"encoding/json"
	"net/http"
)

const (
	rejectedCode    = "REJECTED"
	rejectedMessage = "Request rejected"
)

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
	Meta    map[string]any    `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func buildMeta(r *http.Request) map[string]any {
	requestID := RequestIDFrom(r)
	if requestID == "" {
		return nil
	}
	return map[string]any{"request_id": requestID}
}

// JSON writes v as the whole response body.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// Text writes a plain-text confirmation message.
func Text(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(message))
}

func JSONErrorWithRequest(r *http.Request, w http.ResponseWriter, statusCode int, code string, message string) {
	JSON(w, statusCode, ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
		},
		Meta: buildMeta(r),
	})
}

// Reject answers with the one generic rejection every failed operation
// shares. Callers log the cause; nothing about it reaches the client.
func Reject(w http.ResponseWriter, r *http.Request) {
	JSONErrorWithRequest(r, w, http.StatusBadRequest, rejectedCode, rejectedMessage)
}
