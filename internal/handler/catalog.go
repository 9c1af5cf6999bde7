package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// ListCategories возвращает все категории меню.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, toCategoryResponse(c))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// GetCategory возвращает категорию по идентификатору.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	c, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toCategoryResponse(*c))
}

type categoryRequest struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// CreateCategory создаёт категорию меню.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	c, err := h.service.CreateCategory(r.Context(), model.Category{Slug: req.Slug, Title: req.Title})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toCategoryResponse(*c))
}

// UpdateCategory обновляет категорию меню.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	c, err := h.service.UpdateCategory(r.Context(), model.Category{ID: id, Slug: req.Slug, Title: req.Title})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toCategoryResponse(*c))
}

// DeleteCategory удаляет категорию меню.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseMenuItemFilter(r *http.Request) (model.MenuItemFilter, error) {
	q := r.URL.Query()

	f := model.MenuItemFilter{
		Search:     q.Get("search"),
		Categories: q["category"],
	}

	if v := q.Get("from_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, err
		}
		cents := model.Cents(price)
		f.FromPriceCents = &cents
	}
	if v := q.Get("to_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, err
		}
		cents := model.Cents(price)
		f.ToPriceCents = &cents
	}
	if v := q.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return f, err
		}
		f.Featured = &featured
	}

	return f, nil
}

// ListMenuItems возвращает позиции меню с учётом фильтров запроса.
func (h *Handler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	f, err := parseMenuItemFilter(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	items, err := h.service.ListMenuItems(r.Context(), f)
	if err != nil {
		h.respondError(w, err)
		return
	}

	resp := make([]menuItemResponse, 0, len(items))
	for _, m := range items {
		resp = append(resp, toMenuItemResponse(m))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// GetMenuItem возвращает позицию меню по идентификатору.
func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	m, err := h.service.GetMenuItem(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toMenuItemResponse(*m))
}

type menuItemRequest struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Featured bool    `json:"featured"`
	Category int64   `json:"category"`
}

// CreateMenuItem создаёт позицию меню.
func (h *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	m, err := h.service.CreateMenuItem(r.Context(), model.MenuItem{
		Title:      req.Title,
		PriceCents: model.Cents(req.Price),
		Featured:   req.Featured,
		CategoryID: req.Category,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toMenuItemResponse(*m))
}

// UpdateMenuItem обновляет позицию меню целиком.
func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	m, err := h.service.UpdateMenuItem(r.Context(), model.MenuItem{
		ID:         id,
		Title:      req.Title,
		PriceCents: model.Cents(req.Price),
		Featured:   req.Featured,
		CategoryID: req.Category,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toMenuItemResponse(*m))
}

// DeleteMenuItem удаляет позицию меню.
func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteMenuItem(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type featuredRequest struct {
	Featured *bool `json:"featured"`
}

// SetMenuItemFeatured переключает доступность блюда.
// Операция возвращает обновлённую позицию, а не перенаправление.
func (h *Handler) SetMenuItemFeatured(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req featuredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Featured == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	m, err := h.service.SetMenuItemFeatured(r.Context(), id, *req.Featured)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toMenuItemResponse(*m))
}

type priceRequest struct {
	Price *float64 `json:"price"`
}

// SetMenuItemPrice устанавливает новую цену блюда.
func (h *Handler) SetMenuItemPrice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req priceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Price == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	m, err := h.service.SetMenuItemPrice(r.Context(), id, model.Cents(*req.Price))
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toMenuItemResponse(*m))
}
