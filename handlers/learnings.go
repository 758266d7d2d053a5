package handlers

import (
	"net/http"

	"github.com/flashdeck/flashdeck-api/apperr"
)

type recordLearningRequest struct {
	User       string `json:"user" validate:"required"`
	Set        string `json:"set" validate:"required"`
	CardsTotal int    `json:"cardsTotal"`
	Correct    int    `json:"correct"`
	Wrong      int    `json:"wrong"`
}

// POST /learnings
func (h *Handler) RecordLearning(w http.ResponseWriter, r *http.Request) {
	var req recordLearningRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, "RecordLearning", err)
		return
	}

	set, err := h.Catalog.GetSet(req.Set)
	if err != nil {
		respondError(w, "RecordLearning", err)
		return
	}

	rec, err := h.Learn.RecordLearning(req.User, set.ID, req.CardsTotal, req.Correct, req.Wrong)
	if err != nil {
		respondError(w, "RecordLearning", err)
		return
	}
	rec.Set = set
	respondJSON(w, http.StatusCreated, rec)
}

// GET /learnings?user=
func (h *Handler) ListLearnings(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		respondError(w, "ListLearnings", apperr.Validationf("user query parameter is required"))
		return
	}

	recs, err := h.Learn.ListLearnings(user)
	if err != nil {
		respondError(w, "ListLearnings", err)
		return
	}
	respondJSON(w, http.StatusOK, recs)
}
