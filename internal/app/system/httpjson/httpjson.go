// Package httpjson provides the JSON response plumbing shared by the
// API handlers.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Write encodes v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteText writes a bare string body with the given status. The
// authentication endpoints report their failures this way
// ("User not found", "Password incorrect", "Request body is null").
func WriteText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// WriteMessage writes {"message": ...} with the given status.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	Write(w, status, map[string]string{"message": message})
}

// WriteEmpty writes a 200 with no body, the success shape of the task
// and comment mutation endpoints.
func WriteEmpty(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}
