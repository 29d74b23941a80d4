package handler

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as a compact JSON body. Unlike json.Encoder it adds
// no trailing newline, so probe bodies are byte-exact.
func respondJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
