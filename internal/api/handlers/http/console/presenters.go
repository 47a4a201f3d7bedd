package console

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"brims/internal/actionlock"
	"brims/pkg/e"
)

type lockView struct {
	Busy       bool       `json:"busy"`
	SubjectID  string     `json:"subject_id,omitempty"`
	Collection bool       `json:"collection"`
	Since      *time.Time `json:"since,omitempty"`
}

func presentLock(s actionlock.State) lockView {
	v := lockView{Busy: s.Busy, SubjectID: s.Subject, Collection: s.Subject == actionlock.AllSubjects}
	if s.Busy {
		since := s.Since
		v.Since = &since
	}
	return v
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r).With(
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	if pe, ok := e.IsPolicy(err); ok {
		l.Info("action not permitted", slog.String("reason", pe.Reason))
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "action not permitted", "reason": pe.Reason})
		return
	}
	if ve, ok := e.IsValidation(err); ok {
		l.Info("validation failed", slog.Any("fields", ve.Fields))
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": "validation failed", "fields": ve.Fields})
		return
	}

	switch {
	case errors.Is(err, e.ErrBusy):
		l.Warn("action rejected", slog.Any("error", err))
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": e.ErrBusy.Error()})
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidInput):
		l.Warn("invalid input", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, e.ErrUnauthorized):
		l.Warn("backend refused credentials", slog.Any("error", err))
		h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "unauthorized"})
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict"})
	case errors.Is(err, e.ErrTransport):
		l.Error("backend unreachable", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, map[string]string{"error": "backend unreachable"})
	case errors.Is(err, e.ErrDeadline):
		l.Error("backend timed out", slog.Any("error", err))
		h.writeJSON(w, http.StatusGatewayTimeout, map[string]string{"error": "deadline exceeded"})
	default:
		l.Error("handler error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
