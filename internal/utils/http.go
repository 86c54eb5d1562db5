package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-travel-board/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Msg: "route deleted"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a [models.ErrorResponse] with the given message and status.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	WriteValidationError(w, message, nil, statusCode)
}

// WriteValidationError writes a [models.ErrorResponse] carrying per-field
// failure reasons. A nil details map is omitted from the body.
func WriteValidationError(w http.ResponseWriter, message string, details map[string]string, statusCode int) {
	body, _ := json.Marshal(models.ErrorResponse{Error: message, Details: details})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// WriteText writes a plain-text body with the given status.
func WriteText(w http.ResponseWriter, text string, statusCode int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(text))
}
