package api

import (
	"net/http"
	"time"

	"todo-app/internal/services"
)

// healthResponse is the body of GET /api/health
type healthResponse struct {
	Status    string   `json:"status"`
	Database  string   `json:"database"`
	DBType    string   `json:"dbType"`
	Error     string   `json:"error,omitempty"`
	Timestamp string   `json:"timestamp"`
	Hostname  string   `json:"hostname"`
	Uptime    *float64 `json:"uptime,omitempty"`
}

// SystemHandlers serves the health and info routes
type SystemHandlers struct {
	system services.SystemService
}

// NewSystemHandlers is a constructor for SystemHandlers
func NewSystemHandlers(system services.SystemService) *SystemHandlers {
	return &SystemHandlers{system: system}
}

// Health handles GET /api/health. It answers 503 when the store is unreachable.
func (h *SystemHandlers) Health(w http.ResponseWriter, r *http.Request) {
	report := h.system.Health(r.Context())

	resp := healthResponse{
		DBType:    report.DBType,
		Timestamp: report.Timestamp.Format(time.RFC3339Nano),
		Hostname:  report.Hostname,
	}

	if !report.Healthy {
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		resp.Error = report.Error
		respondWithJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	uptime := report.Uptime.Seconds()
	resp.Status = "healthy"
	resp.Database = "connected"
	resp.Uptime = &uptime
	respondWithJSON(w, http.StatusOK, resp)
}

// Info handles GET /api/info
func (h *SystemHandlers) Info(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.system.Info())
}
