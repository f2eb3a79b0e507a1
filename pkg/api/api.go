package api

import (
	"encoding/json"
	"net/http"
)

// Success writes data as a JSON response with the given status code.
func Success(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing more to salvage here.
		return
	}
}

// Error writes a standardized JSON error envelope.
func Error(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// ParseJSONBody decodes a JSON request body into v, capping the body size.
// Unknown fields are allowed on purpose: pipeline editors attach extra
// presentation attributes the backend has no business rejecting.
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
