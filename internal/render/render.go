// Package render writes the JSON envelopes of the REST API.
package render

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the success body: {"message": ..., "content": ...}.
type Envelope struct {
	Message string `json:"message"`
	Content any    `json:"content"`
}

// ErrorBody is the failure body. Fields lists the offending request fields
// when the failure is a validation error.
type ErrorBody struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("json encode failed", slog.Any("error", err))
	}
}

func Content(w http.ResponseWriter, code int, message string, content any) {
	JSON(w, code, Envelope{Message: message, Content: content})
}

func Error(w http.ResponseWriter, code int, errText, message string, fields ...string) {
	JSON(w, code, ErrorBody{Error: errText, Message: message, Fields: fields})
}
