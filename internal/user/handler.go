package user

import (
	"net/http"

	"tienda-be/internal/apperror"
	"tienda-be/internal/httpx"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/aut/login", h.login)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	if req.UserName == "" || req.UserPassword == "" || req.UserRole == "" {
		httpx.Error(w, apperror.BadRequest("user name, password and role are required"))
		return
	}

	token, err := h.svc.Login(r.Context(), req.UserName, req.UserPassword, req.UserRole)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
