package handlers

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/httpx"
	"github.com/ClemRoy/epicEvents/internal/auth"
	"github.com/ClemRoy/epicEvents/internal/models"
)

type AuthHandler struct {
	db       *gorm.DB
	secret   string
	tokenTTL time.Duration
}

func NewAuthHandler(db *gorm.DB, secret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{db: db, secret: secret, tokenTTL: tokenTTL}
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges email+password for a bearer token. Failures are uniform:
// a missing user and a wrong password both answer invalid_credentials.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}

	var user models.User
	err := h.db.WithContext(r.Context()).
		Where("email = ? AND is_active = ?", in.Email, true).
		First(&user).Error
	if err != nil || !auth.CheckPassword(user.PasswordHash, in.Password) {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}

	token, err := auth.IssueToken(h.secret, user.ID, h.tokenTTL)
	if err != nil {
		writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, loginResponse{Token: token})
}
