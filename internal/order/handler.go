package order

import (
	"net/http"

	"tienda-be/internal/httpx"
	"tienda-be/internal/middleware"
	"tienda-be/internal/user"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/pedidos", func(r chi.Router) {
		r.Use(middleware.Authenticate)
		r.Use(middleware.RequireRole(user.RoleAdmin))

		r.Post("/", h.create)
		r.Get("/", h.list)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	result, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, result)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.List(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	if views == nil {
		views = []View{}
	}
	httpx.WriteJSON(w, http.StatusOK, views)
}
