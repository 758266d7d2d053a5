package handlers

import (
	"net/http"

	"github.com/flashdeck/flashdeck-api/config"
)

type seedCard struct {
	question string
	answer   string
}

type seedSet struct {
	title       string
	description string
	cards       []seedCard
}

var seedSets = []seedSet{
	{
		title:       "Capitals of the World",
		description: "Test your knowledge of world capitals",
		cards: []seedCard{
			{"What is the capital of France?", "Paris"},
			{"What is the capital of Japan?", "Tokyo"},
			{"What is the capital of Australia?", "Canberra"},
			{"What is the capital of Canada?", "Ottawa"},
			{"What is the capital of Brazil?", "Brasília"},
		},
	},
	{
		title:       "Programming Basics",
		description: "Fundamental programming concepts",
		cards: []seedCard{
			{"What does API stand for?", "Application Programming Interface"},
			{"What is a variable?", "A named storage location for a value"},
			{"What does SQL stand for?", "Structured Query Language"},
			{"What is recursion?", "A function that calls itself"},
		},
	},
}

// GET /init
//
// Seed fills the store with sample data for local development. The route
// does not exist in production.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	if config.Env.IsProduction {
		http.NotFound(w, r)
		return
	}

	for _, ss := range seedSets {
		set, err := h.Catalog.CreateSet(ss.title, ss.description, nil, "seed", false)
		if err != nil {
			respondError(w, "Seed", err)
			return
		}
		for _, card := range ss.cards {
			if _, err := h.Catalog.AddCard(set.PublicID, card.question, card.answer, nil); err != nil {
				respondError(w, "Seed", err)
				return
			}
		}
	}
	respondJSON(w, http.StatusOK, map[string]bool{"result": true})
}
