package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/gate"
	"github.com/ClemRoy/epicEvents/httpx"
	"github.com/ClemRoy/epicEvents/internal/auth"
	"github.com/ClemRoy/epicEvents/internal/filters"
	"github.com/ClemRoy/epicEvents/internal/models"
	"github.com/ClemRoy/epicEvents/internal/policy"
	"github.com/ClemRoy/epicEvents/internal/services"
	"github.com/ClemRoy/epicEvents/internal/workflow"
	"github.com/ClemRoy/epicEvents/validation"
)

type EventHandler struct {
	db     *gorm.DB
	gate   *gate.Gate[*policy.Actor]
	events *services.EventService
}

func NewEventHandler(db *gorm.DB, g *gate.Gate[*policy.Actor], events *services.EventService) *EventHandler {
	return &EventHandler{db: db, gate: g, events: events}
}

type eventCreateInput struct {
	ContractID       uint   `json:"contract_id"`
	ClientID         uint   `json:"client_id"`
	SupportContactID uint   `json:"support_contact_id"`
	AttendeeCount    int    `json:"attendee_count"`
	EventDate        string `json:"event_date"`
	Notes            string `json:"notes"`
}

type eventUpdateInput struct {
	AttendeeCount int    `json:"attendee_count"`
	EventDate     string `json:"event_date"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionList, policy.ResourceEvent, nil); err != nil {
		writeError(w, err)
		return
	}

	var events []models.Event
	query := filters.Events(r.URL.Query(), h.db.WithContext(r.Context()).Model(&models.Event{}))
	if err := query.Order("events.id").Find(&events).Error; err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, events)
}

// Create attaches an event to a signed contract. The commercial user
// initiates creation; the linkage and signed-status preconditions are
// enforced transactionally by the event service.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionCreate, policy.ResourceEvent, nil); err != nil {
		writeError(w, err)
		return
	}

	var in eventCreateInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	v := make(validation.Violations)
	validation.RequiredID("contract_id", in.ContractID, v)
	validation.RequiredID("client_id", in.ClientID, v)
	validation.RequiredID("support_contact_id", in.SupportContactID, v)
	validation.NonNegativeInt("attendee_count", in.AttendeeCount, v)
	validation.Required("event_date", in.EventDate, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	eventDate, err := parseDate(in.EventDate)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", validation.Violations{"event_date": "invalid_date"})
		return
	}

	event := models.Event{
		ContractID:       in.ContractID,
		ClientID:         in.ClientID,
		SupportContactID: in.SupportContactID,
		Status:           models.EventStatusPreparation,
		AttendeeCount:    in.AttendeeCount,
		EventDate:        eventDate,
		Notes:            in.Notes,
	}
	if err := h.events.Create(r.Context(), &event); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, event)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionView, policy.ResourceEvent, nil); err != nil {
		writeError(w, err)
		return
	}

	var event models.Event
	if err := h.db.WithContext(r.Context()).First(&event, r.PathValue("id")).Error; err != nil {
		writeError(w, err)
		return
	}
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionView, policy.ResourceEvent, &event); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, event)
}

// Update lets the assigned support user progress their event. Status moves
// only forward through preparation -> ongoing -> finished.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionUpdate, policy.ResourceEvent, nil); err != nil {
		writeError(w, err)
		return
	}

	var event models.Event
	if err := h.db.WithContext(r.Context()).First(&event, r.PathValue("id")).Error; err != nil {
		writeError(w, err)
		return
	}
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionUpdate, policy.ResourceEvent, &event); err != nil {
		writeError(w, err)
		return
	}

	var in eventUpdateInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	v := make(validation.Violations)
	validation.NonNegativeInt("attendee_count", in.AttendeeCount, v)
	validation.Required("event_date", in.EventDate, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	eventDate, err := parseDate(in.EventDate)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", validation.Violations{"event_date": "invalid_date"})
		return
	}

	if in.Status != "" {
		newStatus := models.EventStatus(in.Status)
		if err := workflow.ValidateEventTransition(event.Status, newStatus); err != nil {
			writeError(w, err)
			return
		}
		event.Status = newStatus
	}
	event.AttendeeCount = in.AttendeeCount
	event.EventDate = eventDate
	event.Notes = in.Notes
	if err := h.db.WithContext(r.Context()).Save(&event).Error; err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionDelete, policy.ResourceEvent, nil); err != nil {
		writeError(w, err)
		return
	}

	var event models.Event
	if err := h.db.WithContext(r.Context()).First(&event, r.PathValue("id")).Error; err != nil {
		writeError(w, err)
		return
	}
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionDelete, policy.ResourceEvent, &event); err != nil {
		writeError(w, err)
		return
	}
	if err := h.db.WithContext(r.Context()).Delete(&event).Error; err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusNoContent, nil)
}
