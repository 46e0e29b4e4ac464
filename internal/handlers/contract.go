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

type ContractHandler struct {
	db        *gorm.DB
	gate      *gate.Gate[*policy.Actor]
	contracts *services.ContractService
}

func NewContractHandler(db *gorm.DB, g *gate.Gate[*policy.Actor], contracts *services.ContractService) *ContractHandler {
	return &ContractHandler{db: db, gate: g, contracts: contracts}
}

type contractCreateInput struct {
	ClientID       uint    `json:"client_id"`
	SalesContactID uint    `json:"sales_contact_id"`
	AmountDue      float64 `json:"amount_due"`
	PaymentDueDate string  `json:"payment_due_date"`
}

type contractUpdateInput struct {
	AmountDue      float64 `json:"amount_due"`
	PaymentDueDate string  `json:"payment_due_date"`
	Status         string  `json:"status"`
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionList, policy.ResourceContract, nil); err != nil {
		writeError(w, err)
		return
	}

	var contracts []models.Contract
	query := filters.Contracts(r.URL.Query(), h.db.WithContext(r.Context()).Model(&models.Contract{}))
	if err := query.Order("contracts.id").Find(&contracts).Error; err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, contracts)
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionCreate, policy.ResourceContract, nil); err != nil {
		writeError(w, err)
		return
	}

	var in contractCreateInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	v := make(validation.Violations)
	validation.RequiredID("client_id", in.ClientID, v)
	validation.NonNegativeFloat("amount_due", in.AmountDue, v)
	validation.Required("payment_due_date", in.PaymentDueDate, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	dueDate, err := parseDate(in.PaymentDueDate)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", validation.Violations{"payment_due_date": "invalid_date"})
		return
	}

	// The client must exist before a contract can reference it.
	var client models.Client
	if err := h.db.WithContext(r.Context()).First(&client, in.ClientID).Error; err != nil {
		writeError(w, err)
		return
	}

	if in.SalesContactID == 0 {
		in.SalesContactID = actor.ID
	}
	contract := models.Contract{
		ClientID:       in.ClientID,
		SalesContactID: in.SalesContactID,
		Status:         models.ContractStatusNegotiation,
		AmountDue:      in.AmountDue,
		PaymentDueDate: dueDate,
	}
	if err := h.db.WithContext(r.Context()).Create(&contract).Error; err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, contract)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionView, policy.ResourceContract, nil); err != nil {
		writeError(w, err)
		return
	}

	var contract models.Contract
	if err := h.db.WithContext(r.Context()).First(&contract, r.PathValue("id")).Error; err != nil {
		writeError(w, err)
		return
	}
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionView, policy.ResourceContract, &contract); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, contract)
}

// Update edits the contract terms and, when the payload carries
// status=signed, runs the signing workflow: the transition is validated, and
// the contract update plus the client's potential -> customer flip are
// persisted in one transaction.
func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionUpdate, policy.ResourceContract, nil); err != nil {
		writeError(w, err)
		return
	}

	var contract models.Contract
	if err := h.db.WithContext(r.Context()).First(&contract, r.PathValue("id")).Error; err != nil {
		writeError(w, err)
		return
	}
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionUpdate, policy.ResourceContract, &contract); err != nil {
		writeError(w, err)
		return
	}

	var in contractUpdateInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	v := make(validation.Violations)
	validation.NonNegativeFloat("amount_due", in.AmountDue, v)
	validation.Required("payment_due_date", in.PaymentDueDate, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	dueDate, err := parseDate(in.PaymentDueDate)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", validation.Violations{"payment_due_date": "invalid_date"})
		return
	}

	newStatus := models.ContractStatus(in.Status)
	if in.Status != "" {
		if err := workflow.ValidateContractTransition(contract.Status, newStatus); err != nil {
			writeError(w, err)
			return
		}
	}

	contract.AmountDue = in.AmountDue
	contract.PaymentDueDate = dueDate
	if err := h.db.WithContext(r.Context()).Save(&contract).Error; err != nil {
		writeError(w, err)
		return
	}

	if in.Status != "" && newStatus == models.ContractStatusSigned && !contract.Signed() {
		signed, _, err := h.contracts.Sign(r.Context(), contract.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		contract = *signed
	}
	httpx.JSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionDelete, policy.ResourceContract, nil); err != nil {
		writeError(w, err)
		return
	}

	var contract models.Contract
	if err := h.db.WithContext(r.Context()).First(&contract, r.PathValue("id")).Error; err != nil {
		writeError(w, err)
		return
	}
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionDelete, policy.ResourceContract, &contract); err != nil {
		writeError(w, err)
		return
	}
	// Events backed by the contract go with it (ON DELETE CASCADE).
	if err := h.db.WithContext(r.Context()).Delete(&contract).Error; err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusNoContent, nil)
}
