package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body shared by every endpoint.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
	RequestID  string `json:"requestId,omitempty"`
}

// JSON writes data with the given status.
func JSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// JSONError writes an ErrorResponse. The request may be nil.
func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	resp := ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Error:      http.StatusText(statusCode),
	}
	if r != nil {
		resp.RequestID = RequestIDFrom(r)
	}
	JSON(w, statusCode, resp)
}

// Text writes a plain text body.
func Text(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}
