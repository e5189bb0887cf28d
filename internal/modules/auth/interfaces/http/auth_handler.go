package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/wxpress/salesboard/internal/gateway/middleware"
	"github.com/wxpress/salesboard/internal/modules/auth/application"
	"github.com/wxpress/salesboard/internal/modules/auth/domain"
)

type AuthHandler struct {
	service *application.AuthService
}

func NewAuthHandler(service *application.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginResponse struct {
	Token string        `json:"token"`
	User  staffResponse `json:"user"`
}

type staffResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	token, user, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, `{"error": "invalid email or password"}`, http.StatusUnauthorized)
			return
		}
		log.Printf("auth: login failed: %v", err)
		http.Error(w, `{"error": "login failed"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, loginResponse{
		Token: token,
		User:  staffResponse{ID: user.ID, Email: user.Email, Name: user.Name},
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	staffID, ok := r.Context().Value(middleware.ContextKeyStaffID).(uuid.UUID)
	if !ok {
		http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
		return
	}

	user, err := h.service.GetStaff(r.Context(), staffID)
	if err != nil {
		if errors.Is(err, domain.ErrStaffNotFound) {
			http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
			return
		}
		http.Error(w, `{"error": "lookup failed"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, staffResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("auth: encode error: %v", err)
	}
}
