package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reminders-backend/internal/domain"
	"github.com/heartmarshall/reminders-backend/internal/service/reminder"
)

// reminderService defines the minimal interface needed by ReminderHandler.
type reminderService interface {
	Create(ctx context.Context, input reminder.CreateInput) (*domain.Reminder, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	List(ctx context.Context, input reminder.ListInput) ([]domain.Reminder, error)
	Counts(ctx context.Context) (domain.ReminderCounts, error)
	Update(ctx context.Context, id uuid.UUID, input reminder.UpdateInput) (*domain.Reminder, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReminderHandler serves reminder REST endpoints.
type ReminderHandler struct {
	svc reminderService
	log *slog.Logger
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(svc reminderService, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{svc: svc, log: logger.With("handler", "reminders")}
}

type createReminderRequest struct {
	Title            string    `json:"title"`
	Description      *string   `json:"description,omitempty"`
	EventDate        time.Time `json:"eventDate"`
	NotificationDate time.Time `json:"notificationDate"`
}

type updateReminderRequest struct {
	Title            *string    `json:"title,omitempty"`
	Description      *string    `json:"description,omitempty"`
	EventDate        *time.Time `json:"eventDate,omitempty"`
	NotificationDate *time.Time `json:"notificationDate,omitempty"`
}

type reminderResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      *string    `json:"description,omitempty"`
	EventDate        time.Time  `json:"eventDate"`
	NotificationDate time.Time  `json:"notificationDate"`
	Status           string     `json:"status"`
	NotifiedAt       *time.Time `json:"notifiedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type countsResponse struct {
	All       int `json:"all"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// Create handles POST /api/reminders.
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Create(r.Context(), reminder.CreateInput{
		Title:            req.Title,
		Description:      req.Description,
		EventDate:        req.EventDate,
		NotificationDate: req.NotificationDate,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReminderResponse(result))
}

// Get handles GET /api/reminders/{id}.
func (h *ReminderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReminderResponse(result))
}

// List handles GET /api/reminders. Accepts ?status=, ?limit=, ?offset=.
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	input := reminder.ListInput{}

	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.Status(s)
		input.Status = &status
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := parseNonNegative(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := parseNonNegative(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		input.Offset = n
	}

	items, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]reminderResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toReminderResponse(&items[i]))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": resp})
}

// Counts handles GET /api/reminders/counts.
func (h *ReminderHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Counts(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, countsResponse{
		All:       counts.All,
		Active:    counts.Active,
		Completed: counts.Completed,
	})
}

// Update handles PUT /api/reminders/{id}.
func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req updateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Update(r.Context(), id, reminder.UpdateInput{
		Title:            req.Title,
		Description:      req.Description,
		EventDate:        req.EventDate,
		NotificationDate: req.NotificationDate,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReminderResponse(result))
}

// Complete handles POST /api/reminders/{id}/complete.
func (h *ReminderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Complete)
}

// Cancel handles POST /api/reminders/{id}/cancel.
func (h *ReminderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Cancel)
}

func (h *ReminderHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Reminder, error)) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	result, err := op(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReminderResponse(result))
}

// Delete handles DELETE /api/reminders/{id}.
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ReminderHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reminder id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReminderHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "reminder is no longer active")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseNonNegative(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("negative")
	}
	return n, nil
}

func toReminderResponse(rem *domain.Reminder) reminderResponse {
	return reminderResponse{
		ID:               rem.ID.String(),
		Title:            rem.Title,
		Description:      rem.Description,
		EventDate:        rem.EventDate,
		NotificationDate: rem.NotificationDate,
		Status:           string(rem.Status),
		NotifiedAt:       rem.NotifiedAt,
		CreatedAt:        rem.CreatedAt,
		UpdatedAt:        rem.UpdatedAt,
	}
}
