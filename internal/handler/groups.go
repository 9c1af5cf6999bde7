package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/t7spotter/restaurantAPI/internal/model"
)

func groupParam(r *http.Request) model.Group {
	return model.Group(chi.URLParam(r, "group"))
}

// ListGroupUsers возвращает участников группы.
func (h *Handler) ListGroupUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListGroupUsers(r.Context(), groupParam(r))
	if err != nil {
		h.respondError(w, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type addGroupUserRequest struct {
	Username string `json:"username"`
}

// AddGroupUser добавляет пользователя в группу по имени.
func (h *Handler) AddGroupUser(w http.ResponseWriter, r *http.Request) {
	var req addGroupUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	group := groupParam(r)
	u, err := h.service.AddUserToGroup(r.Context(), req.Username, group)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, messageResponse{
		Message: fmt.Sprintf("%s added to the %s group", u.Username, group),
	})
}

// RemoveGroupUser удаляет пользователя из группы.
func (h *Handler) RemoveGroupUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveUserFromGroup(r.Context(), userID, groupParam(r)); err != nil {
		h.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
