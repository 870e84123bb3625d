package handlers

import (
	"encoding/json"
	"net/http"

	"cvscanner/apperrors"
)

// MessageResponse is the body for plain success/error messages. Error
// bodies always carry the message field the clients key off.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

func writeError(w http.ResponseWriter, err error) {
	writeMessage(w, apperrors.StatusOf(err), apperrors.MessageOf(err))
}
