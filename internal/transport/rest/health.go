package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const defaultPingTimeout = 3 * time.Second

type storagePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	storage     storagePinger
	driver      string
	version     string
	pingTimeout time.Duration
}

// NewHealthHandler creates a HealthHandler. driver names the storage backend
// in the report.
func NewHealthHandler(storage storagePinger, driver, version string) *HealthHandler {
	return &HealthHandler{storage: storage, driver: driver, version: version, pingTimeout: defaultPingTimeout}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus reports one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Driver  string `json:"driver,omitempty"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200; it only proves the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 while the storage backend does not respond.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	storage := h.probeStorage(r.Context())
	h.respond(w, HealthResponse{Status: storage.Status})
}

// Health is Ready plus the version and per-component detail.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	storage := h.probeStorage(r.Context())
	h.respond(w, HealthResponse{
		Status:     storage.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"storage": storage},
	})
}

func (h *HealthHandler) probeStorage(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, h.pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.storage.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Driver: h.driver, Error: err.Error()}
	}
	return CompStatus{Status: "ok", Driver: h.driver, Latency: time.Since(start).String()}
}

func (h *HealthHandler) respond(w http.ResponseWriter, resp HealthResponse) {
	resp.Timestamp = time.Now()
	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
