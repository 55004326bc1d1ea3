package homeyapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aretw0/homey-mcp/pkg/domain"
)

// ErrNoAddress is returned when neither a local address nor a cloud id is configured.
var ErrNoAddress = errors.New("no controller address or cloud id configured")

// APIError is a non-2xx response from the controller.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("homey api %d: %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("homey api %d: %s", e.Status, e.Message)
}

// Is maps 404 responses to domain.ErrNotFound.
func (e *APIError) Is(target error) bool {
	return target == domain.ErrNotFound && e.Status == http.StatusNotFound
}

// parseAPIError extracts the controller's error text from a response body.
// Bodies look like {"error":"...","error_description":"..."} or plain text.
func parseAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		Message          string `json:"message"`
	}
	msg := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &payload) == nil {
		switch {
		case payload.ErrorDescription != "":
			msg = payload.ErrorDescription
		case payload.Error != "":
			msg = payload.Error
		case payload.Message != "":
			msg = payload.Message
		}
	}
	return &APIError{Status: status, Message: msg}
}
