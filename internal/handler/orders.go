package handler

import (
	"encoding/json"
	"net/http"
)

// Checkout оформляет заказ из корзины текущего пользователя.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	order, items, err := h.service.Checkout(r.Context(), principal.ID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, orderWithItemsResponse{
		orderResponse: toOrderResponse(*order),
		Items:         toOrderItemResponses(items),
	})
}

// ListOrders возвращает заказы, видимые текущему принципалу.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	orders, err := h.service.ListOrders(r.Context(), principal)
	if err != nil {
		h.respondError(w, err)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// GetOrder возвращает заказ с позициями, если принципал вправе его видеть.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, items, err := h.service.GetOrder(r.Context(), principal, id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, orderWithItemsResponse{
		orderResponse: toOrderResponse(*order),
		Items:         toOrderItemResponses(items),
	})
}

// MarkDelivered отмечает заказ доставленным от имени назначенного курьера.
func (h *Handler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, err := h.service.MarkDelivered(r.Context(), principal.ID, id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

type reassignRequest struct {
	DeliveryCrew int64 `json:"delivery_crew_id"`
}

// ReassignDelivery назначает заказу нового курьера.
func (h *Handler) ReassignDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req reassignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, err := h.service.ReassignDelivery(r.Context(), id, req.DeliveryCrew)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

type readyRequest struct {
	Ready *bool `json:"ready"`
}

type readyResponse struct {
	ReadyToWork bool `json:"ready_to_work"`
}

// SetReadyToWork переключает готовность текущего курьера принимать заказы.
func (h *Handler) SetReadyToWork(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req readyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Ready == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.SetReadyToWork(r.Context(), principal.ID, *req.Ready); err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, readyResponse{ReadyToWork: *req.Ready})
}
