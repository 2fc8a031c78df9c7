package handlers

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	ServiceName string
	StartTime   time.Time
	Now         func() time.Time
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{
		ServiceName: serviceName,
		StartTime:   time.Now(),
		Now:         time.Now,
	}
}

// Handle is a liveness probe and never touches the CRM.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	now := h.Now()

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   h.ServiceName,
		Timestamp: now.Format(time.RFC3339),
		Uptime:    now.Sub(h.StartTime).Round(time.Second).String(),
	})
}
