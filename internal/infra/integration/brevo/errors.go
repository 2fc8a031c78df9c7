package brevo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// CodeDuplicateParameter is what Brevo answers with (status 400) when the
// contact already exists. Callers that set UpdateEnabled treat it as success,
// so a change in Brevo's error shape turns duplicates back into plain 400s.
// The remap is counted in brevo_duplicate_remaps_total to make that visible.
const CodeDuplicateParameter = "duplicate_parameter"

var (
	// ErrTimeout wraps calls that exceeded the client timeout.
	ErrTimeout = errors.New("brevo: request timed out")
	// ErrTransport wraps calls that never got an HTTP response.
	ErrTransport = errors.New("brevo: transport failure")
)

// APIError is a non-2xx answer from Brevo.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" && e.Message == "" {
		return fmt.Sprintf("brevo: status %d", e.StatusCode)
	}
	return fmt.Sprintf("brevo: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// IsDuplicate reports whether the contact already existed.
func (e *APIError) IsDuplicate() bool {
	return e.StatusCode == http.StatusBadRequest && e.Code == CodeDuplicateParameter
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var payload errorResponse
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	}
	return apiErr
}
