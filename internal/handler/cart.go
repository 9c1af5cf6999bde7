package handler

import (
	"encoding/json"
	"net/http"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

// GetCart возвращает корзину текущего пользователя с агрегатами.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	lines, summary, err := h.service.GetCart(r.Context(), principal.ID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, cartResponse{
		Items:         toCartLineResponses(lines),
		TotalPrice:    model.Amount(summary.TotalPriceCents),
		ItemCount:     summary.ItemCount,
		TotalQuantity: summary.TotalQuantity,
	})
}

type addCartLineRequest struct {
	MenuItem int64 `json:"menuitem_id"`
	Quantity int32 `json:"quantity"`
}

// AddCartLine добавляет блюдо в корзину текущего пользователя.
func (h *Handler) AddCartLine(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req addCartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	line, err := h.service.AddCartLine(r.Context(), principal.ID, req.MenuItem, req.Quantity)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toCartLineResponse(*line))
}

// ClearCart очищает корзину текущего пользователя. Операция идемпотентна.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	if err := h.service.ClearCart(r.Context(), principal.ID); err != nil {
		h.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AllCarts возвращает менеджеру корзины всех пользователей.
func (h *Handler) AllCarts(w http.ResponseWriter, r *http.Request) {
	carts, err := h.service.AllCarts(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	resp := make([]userCartResponse, 0, len(carts))
	for _, c := range carts {
		resp = append(resp, userCartResponse{
			User:     c.UserID,
			Username: c.Username,
			Items:    toCartLineResponses(c.Lines),
			Subtotal: model.Amount(c.SubtotalCents),
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}
