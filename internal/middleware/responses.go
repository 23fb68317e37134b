package middleware

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSON encodes v with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the {ok:false, error, details} envelope.
func WriteError(w http.ResponseWriter, code int, msg, details string) {
	WriteJSON(w, code, errorResponse{Error: msg, Details: details})
}
