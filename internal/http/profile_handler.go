package http

import (
	"net/http"

	"bookcatalog/internal/httpx"
	"bookcatalog/internal/usecase"
)

type ProfileHandler struct {
	users usecase.UserRepository
}

func NewProfileHandler(users usecase.UserRepository) *ProfileHandler {
	return &ProfileHandler{users: users}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFrom(r)
	if !ok {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}
	httpx.JSONSuccess(r, w, user, nil)
}
