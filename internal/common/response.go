package common

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body: every endpoint answers
// { "error": bool, "message": string, "data": ... }.
type Envelope struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	respond(w, code, Envelope{Error: true, Message: message})
}

func RespondWithData(w http.ResponseWriter, code int, message string, data interface{}) {
	respond(w, code, Envelope{Error: false, Message: message, Data: data})
}

func respond(w http.ResponseWriter, code int, payload Envelope) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": true, "message": "Failed to marshal JSON response."}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
