package handlers

import (
	"net/http"

	"github.com/ClemRoy/epicEvents/gate"
	"github.com/ClemRoy/epicEvents/httpx"
	"github.com/ClemRoy/epicEvents/internal/auth"
	"github.com/ClemRoy/epicEvents/internal/models"
	"github.com/ClemRoy/epicEvents/internal/policy"
	"github.com/ClemRoy/epicEvents/internal/services"
	"github.com/ClemRoy/epicEvents/validation"
)

type UserHandler struct {
	gate  *gate.Gate[*policy.Actor]
	users *services.UserService
}

func NewUserHandler(g *gate.Gate[*policy.Actor], users *services.UserService) *UserHandler {
	return &UserHandler{gate: g, users: users}
}

type userCreateInput struct {
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Password  string   `json:"password"`
	IsAdmin   bool     `json:"is_admin"`
	Groups    []string `json:"groups"`
}

// Create provisions a staff user. Admin only; the gate's user policy rejects
// everyone else.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := auth.ActorFromContext(r.Context())
	if err := h.gate.Authorize(r.Context(), actor, gate.ActionCreate, policy.ResourceUser, nil); err != nil {
		writeError(w, err)
		return
	}

	var in userCreateInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	v := make(validation.Violations)
	validation.Required("email", in.Email, v)
	validation.Email("email", in.Email, v)
	validation.Required("first_name", in.FirstName, v)
	validation.Required("last_name", in.LastName, v)
	validation.Required("password", in.Password, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	user := models.User{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsActive:  true,
		IsAdmin:   in.IsAdmin,
	}
	if err := h.users.Provision(r.Context(), &user, in.Password, in.Groups); err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, user)
}
