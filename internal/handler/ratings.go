package handler

import (
	"encoding/json"
	"net/http"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

// GetMenuItemRating возвращает агрегат оценок блюда.
func (h *Handler) GetMenuItemRating(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	summary, err := h.service.RatingSummary(r.Context(), model.RatingTarget{
		Kind: model.RatingTargetMenuItem,
		ID:   id,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toRatingSummaryResponse(summary))
}

type ratingRequest struct {
	Rate int16 `json:"rate"`
}

// SubmitMenuItemRating сохраняет оценку блюда от текущего пользователя.
func (h *Handler) SubmitMenuItemRating(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	id, err := parseID(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	rating, err := h.service.SubmitRating(r.Context(), principal.ID, model.RatingTarget{
		Kind: model.RatingTargetMenuItem,
		ID:   id,
	}, req.Rate)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toRatingResponse(*rating))
}
