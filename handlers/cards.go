package handlers

import (
	"net/http"
	"strconv"

	"github.com/flashdeck/flashdeck-api/apperr"
)

type createCardRequest struct {
	Set      string `json:"set" validate:"required"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Image    string `json:"image"`
}

type learnCardResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Image    string `json:"image,omitempty"`
}

// POST /cards
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, "CreateCard", err)
		return
	}

	image, err := decodeImage(req.Image)
	if err != nil {
		respondError(w, "CreateCard", err)
		return
	}

	card, err := h.Catalog.AddCard(req.Set, req.Question, req.Answer, image)
	if err != nil {
		respondError(w, "CreateCard", err)
		return
	}
	respondJSON(w, http.StatusCreated, card)
}

// GET /cards?setid=
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	setID := r.URL.Query().Get("setid")
	if setID == "" {
		respondError(w, "ListCards", apperr.Validationf("setid query parameter is required"))
		return
	}

	cards, err := h.Catalog.ListCards(setID)
	if err != nil {
		respondError(w, "ListCards", err)
		return
	}
	respondJSON(w, http.StatusOK, cards)
}

// GET /cards/learn?setid=&limit=
func (h *Handler) LearnCards(w http.ResponseWriter, r *http.Request) {
	setID := r.URL.Query().Get("setid")
	if setID == "" {
		respondError(w, "LearnCards", apperr.Validationf("setid query parameter is required"))
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		respondError(w, "LearnCards", apperr.Validationf("limit must be an integer"))
		return
	}

	set, err := h.Catalog.GetSet(setID)
	if err != nil {
		respondError(w, "LearnCards", err)
		return
	}

	cards, err := h.Learn.SampleCards(set.ID, limit)
	if err != nil {
		respondError(w, "LearnCards", err)
		return
	}

	session := make([]learnCardResponse, 0, len(cards))
	for _, card := range cards {
		session = append(session, learnCardResponse{
			Question: card.Question,
			Answer:   card.Answer,
			Image:    card.Image,
		})
	}
	respondJSON(w, http.StatusOK, session)
}

// GET /cards/{cardID}/image
func (h *Handler) GetCardImage(w http.ResponseWriter, r *http.Request) {
	card, err := h.Catalog.GetCard(r.PathValue("cardID"))
	if err != nil {
		respondError(w, "GetCardImage", err)
		return
	}
	if len(card.ImageData) == 0 {
		respondError(w, "GetCardImage", apperr.NotFoundf("card %s has no image", card.PublicID))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(card.ImageData)
}
