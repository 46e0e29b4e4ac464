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
	"github.com/ClemRoy/epicEvents/validation"
)

type ClientHandler struct {
	db   *gorm.DB
	gate *gate.Gate[*policy.Actor]
}

func NewClientHandler(db *gorm.DB, g *gate.Gate[*policy.Actor]) *ClientHandler {
	return &ClientHandler{db: db, gate: g}
}

type clientInput struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	CompanyName    string `json:"company_name"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	Phone          string `json:"phone"`
	SalesContactID uint   `json:"sales_contact_id"`
}

func (in *clientInput) validate() validation.Violations {
	v := make(validation.Violations)
	validation.Required("first_name", in.FirstName, v)
	validation.Required("last_name", in.LastName, v)
	validation.Required("company_name", in.CompanyName, v)
	validation.Required("email", in.Email, v)
	validation.Email("email", in.Email, v)
	return v
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionList, policy.ResourceClient, nil); err != nil {
		writeError(w, err)
		return
	}

	var clients []models.Client
	query := filters.Clients(r.URL.Query(), h.db.WithContext(r.Context()).Model(&models.Client{}))
	if err := query.Order("clients.id").Find(&clients).Error; err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionCreate, policy.ResourceClient, nil); err != nil {
		writeError(w, err)
		return
	}

	var in clientInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	if v := in.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	// New clients default to the creating commercial user as sales contact.
	if in.SalesContactID == 0 {
		in.SalesContactID = actor.ID
	}
	client := models.Client{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		CompanyName:    in.CompanyName,
		Email:          in.Email,
		Mobile:         in.Mobile,
		Phone:          in.Phone,
		Status:         models.ClientStatusPotential,
		SalesContactID: in.SalesContactID,
	}
	if err := h.db.WithContext(r.Context()).Create(&client).Error; err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionView, policy.ResourceClient, nil); err != nil {
		writeError(w, err)
		return
	}

	var client models.Client
	if err := h.db.WithContext(r.Context()).First(&client, r.PathValue("id")).Error; err != nil {
		writeError(w, err)
		return
	}
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionView, policy.ResourceClient, &client); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

// Update replaces the client's contact fields. Status is deliberately not
// accepted: potential -> customer happens only as the contract-sign side
// effect.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionUpdate, policy.ResourceClient, nil); err != nil {
		writeError(w, err)
		return
	}

	var client models.Client
	if err := h.db.WithContext(r.Context()).First(&client, r.PathValue("id")).Error; err != nil {
		writeError(w, err)
		return
	}
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionUpdate, policy.ResourceClient, &client); err != nil {
		writeError(w, err)
		return
	}

	var in clientInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	if v := in.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	client.FirstName = in.FirstName
	client.LastName = in.LastName
	client.CompanyName = in.CompanyName
	client.Email = in.Email
	client.Mobile = in.Mobile
	client.Phone = in.Phone
	if in.SalesContactID != 0 {
		client.SalesContactID = in.SalesContactID
	}
	if err := h.db.WithContext(r.Context()).Save(&client).Error; err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionDelete, policy.ResourceClient, nil); err != nil {
		writeError(w, err)
		return
	}

	var client models.Client
	if err := h.db.WithContext(r.Context()).First(&client, r.PathValue("id")).Error; err != nil {
		writeError(w, err)
		return
	}
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionDelete, policy.ResourceClient, &client); err != nil {
		writeError(w, err)
		return
	}
	// Contracts and their events go with the client (ON DELETE CASCADE).
	if err := h.db.WithContext(r.Context()).Delete(&client).Error; err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusNoContent, nil)
}
