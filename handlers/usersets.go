package handlers

import (
	"net/http"

	"github.com/flashdeck/flashdeck-api/apperr"
)

type addFavoriteRequest struct {
	User string `json:"user" validate:"required"`
	Set  string `json:"set" validate:"required"`
}

// POST /usersets
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req addFavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, "AddFavorite", err)
		return
	}

	fav, err := h.Catalog.AddFavorite(req.User, req.Set)
	if err != nil {
		respondError(w, "AddFavorite", err)
		return
	}
	respondJSON(w, http.StatusCreated, fav)
}

// GET /usersets?user=
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		respondError(w, "ListFavorites", apperr.Validationf("user query parameter is required"))
		return
	}

	sets, err := h.Catalog.ListFavorites(user)
	if err != nil {
		respondError(w, "ListFavorites", err)
		return
	}
	respondJSON(w, http.StatusOK, sets)
}
