package dex

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-success response from the Dex API. Status carries the
// remote HTTP status code unchanged; Message is what handlers surface to the
// caller.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// parseAPIError extracts a meaningful error from an HTTP error response.
// Dex error bodies carry a JSON {"error": ...} message; anything else is
// surfaced with the status code and raw body.
func parseAPIError(statusCode int, body []byte) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return &APIError{Status: statusCode, Message: errResp.Error}
	}
	return &APIError{Status: statusCode, Message: fmt.Sprintf("dex api returned %d: %s", statusCode, string(body))}
}
