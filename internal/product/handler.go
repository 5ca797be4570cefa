package product

import (
	"fmt"
	"net/http"
	"strconv"

	"tienda-be/internal/apperror"
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
	r.Route("/productos", func(r chi.Router) {
		r.Get("/", h.list)

		// mutating routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate)
			r.Use(middleware.RequireRole(user.RoleAdmin))

			r.Post("/", h.create)
			r.Put("/{id}/stock", h.updateStock)
			r.Put("/{id}/nombre", h.updateName)
			r.Delete("/{id}", h.delete)
		})
	})
}

func productID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.BadRequest("invalid product id")
	}
	return id, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	if products == nil {
		products = []Product{}
	}
	httpx.WriteJSON(w, http.StatusOK, products)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	p, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	var req UpdateStockRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	if err := h.svc.UpdateStock(r.Context(), id, req.Stock); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]int{
		"product_id":    id,
		"product_stock": req.Stock,
	})
}

func (h *Handler) updateName(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	var req UpdateNameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	if err := h.svc.UpdateName(r.Context(), id, req.Name); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"product_id":   id,
		"product_name": req.Name,
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("product with id %d deleted successfully", id),
	})
}
