package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/xavierca1/brand-bridge/internal/usecase"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	maxBodyBytes = 1 << 20
)

// Response is the envelope shared by every /api answer except health.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Response{Status: statusSuccess, Message: message})
}

func writeErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Status: statusError, Message: message})
}

// statusForError maps use case errors to HTTP. ok is false for errors the
// use cases did not classify.
func statusForError(err error) (status int, message string, ok bool) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		return http.StatusBadRequest, domainErr.Message, true
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		if techErr.Code == usecase.CodeCRMTimeout {
			return http.StatusServiceUnavailable, techErr.Message, true
		}
		return http.StatusInternalServerError, techErr.Message, true
	}

	return 0, "", false
}

// decodeObject reads a JSON object body. It returns nil for a missing,
// malformed or non-object body.
func decodeObject(w http.ResponseWriter, r *http.Request) map[string]any {
	if r.Body == nil {
		return nil
	}
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil || len(raw) == 0 {
		return nil
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}
	return data
}

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

// optionalString returns nil when key is absent or not a string.
func optionalString(data map[string]any, key string) *string {
	s, ok := data[key].(string)
	if !ok {
		return nil
	}
	return &s
}
