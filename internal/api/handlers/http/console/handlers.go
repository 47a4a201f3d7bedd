package console

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"brims/internal/actionlock"
	"brims/internal/domain"
	"brims/internal/middleware"
	"brims/internal/policy"
	"brims/internal/query"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Reader interface {
	GetVisiblePage(actor domain.Actor, st domain.QueryState) domain.ListIncidentsResponse
	EvaluatePolicy(actor domain.Actor, id string) (policy.Decision, error)
	Stats() domain.IncidentStats
	LockState() actionlock.State
	Acquire(subject string) error
	Release(subject string) (bool, error)
	Refresh(ctx context.Context) error
}

type Mutator interface {
	Create(ctx context.Context, actor domain.Actor, payload domain.IncidentPayload) (*domain.Incident, error)
	Update(ctx context.Context, actor domain.Actor, id string, patch domain.IncidentPatch) (*domain.Incident, error)
	ChangeStatus(ctx context.Context, actor domain.Actor, id string, req domain.StatusChangeRequest) (*domain.Incident, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	SavePopulation(ctx context.Context, actor domain.Actor, id string, data domain.PopulationData) error
	SaveInfrastructure(ctx context.Context, actor domain.Actor, id string, data domain.InfrastructureStatus) error
	MarkNotificationRead(ctx context.Context, actor domain.Actor, id string) error
	MarkAllNotificationsRead(ctx context.Context, actor domain.Actor) error
	DeleteAllNotifications(ctx context.Context, actor domain.Actor) error
}

type Handler struct {
	logger  *slog.Logger
	Reader  Reader
	Mutator Mutator
}

func NewHandler(logger *slog.Logger, reader Reader, mutator Mutator) *Handler {
	return &Handler{
		logger:  logger,
		Reader:  reader,
		Mutator: mutator,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func actor(r *http.Request) domain.Actor {
	a, _ := middleware.ActorFrom(r.Context())
	return a
}

type lockRequest struct {
	SubjectID string `json:"subject_id"`
}

func (h *Handler) ListIncidents(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ListIncidents", slog.String("query", r.URL.RawQuery))

	st := query.ParseQueryState(r.URL.Query())
	page := h.Reader.GetVisiblePage(actor(r), st)

	l.Debug("incidents listed",
		slog.Int("count", len(page.Items)),
		slog.Int("total", page.TotalCount),
		slog.Int("page", page.Page),
	)
	h.writeJSON(w, http.StatusOK, page)
}

func (h *Handler) IncidentPolicy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	d, err := h.Reader.EvaluatePolicy(actor(r), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, d)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Reader.Stats())
}

func (h *Handler) LockState(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, presentLock(h.Reader.LockState()))
}

func (h *Handler) LockAcquire(w http.ResponseWriter, r *http.Request) {
	req, err := middleware.DecodeJSON[lockRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.Reader.Acquire(req.SubjectID); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.log(r).Info("lock acquired by client", slog.String("subject", req.SubjectID), slog.String("actor", actor(r).ID))
	h.writeJSON(w, http.StatusOK, presentLock(h.Reader.LockState()))
}

// LockRelease frees a hold taken through LockAcquire. The subject must match
// the held one; a running action is never released from here.
func (h *Handler) LockRelease(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject_id")
	released, err := h.Reader.Release(subject)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.log(r).Info("lock release requested by client",
		slog.String("subject", subject),
		slog.Bool("released", released),
		slog.String("actor", actor(r).ID),
	)
	h.writeJSON(w, http.StatusOK, map[string]bool{"released": released})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Reader.Refresh(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.Reader.Stats())
}

func (h *Handler) CreateIncident(w http.ResponseWriter, r *http.Request) {
	req, err := middleware.DecodeJSON[domain.IncidentPayload](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	inc, err := h.Mutator.Create(r.Context(), actor(r), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, inc)
}

func (h *Handler) UpdateIncident(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	patch, err := middleware.DecodeJSON[domain.IncidentPatch](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	inc, err := h.Mutator.Update(r.Context(), actor(r), id, patch)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, inc)
}

func (h *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := middleware.DecodeJSON[domain.StatusChangeRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	inc, err := h.Mutator.ChangeStatus(r.Context(), actor(r), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, inc)
}

func (h *Handler) DeleteIncident(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Mutator.Delete(r.Context(), actor(r), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SavePopulation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	data, err := middleware.DecodeJSON[domain.PopulationData](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.Mutator.SavePopulation(r.Context(), actor(r), id, data); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SaveInfrastructure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	data, err := middleware.DecodeJSON[domain.InfrastructureStatus](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.Mutator.SaveInfrastructure(r.Context(), actor(r), id, data); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Mutator.MarkNotificationRead(r.Context(), actor(r), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Mutator.MarkAllNotificationsRead(r.Context(), actor(r)); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteAllNotifications(w http.ResponseWriter, r *http.Request) {
	if err := h.Mutator.DeleteAllNotifications(r.Context(), actor(r)); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
