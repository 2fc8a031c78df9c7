package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	start := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	h := NewHealthHandler("Brand Bridge API")
	h.StartTime = start
	h.Now = func() time.Time { return start.Add(90 * time.Second) }

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, HealthResponse{
		Status:    "healthy",
		Service:   "Brand Bridge API",
		Timestamp: "2026-10-16T12:01:30Z",
		Uptime:    "1m30s",
	}, resp)
}
