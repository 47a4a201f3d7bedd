package system

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"brims/internal/store"
)

type SnapshotSource interface {
	Snapshot() store.Snapshot
}

type Handler struct {
	logger *slog.Logger
	source SnapshotSource
}

func NewHandler(logger *slog.Logger, source SnapshotSource) *Handler {
	return &Handler{logger: logger, source: source}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type readiness struct {
	Ready     bool   `json:"ready"`
	Version   uint64 `json:"version"`
	Stale     bool   `json:"stale"`
	Incidents int    `json:"incidents"`
}

// SystemReady answers 503 until the store holds a snapshot confirmed by the
// backend.
func (h *Handler) SystemReady(w http.ResponseWriter, r *http.Request) {
	snap := h.source.Snapshot()
	body := readiness{
		Ready:     snap.Version > 0 && !snap.Stale,
		Version:   snap.Version,
		Stale:     snap.Stale,
		Incidents: len(snap.Incidents),
	}

	code := http.StatusOK
	if !body.Ready {
		code = http.StatusServiceUnavailable
		h.logger.Debug("not ready", slog.Uint64("version", snap.Version), slog.Bool("stale", snap.Stale))
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
