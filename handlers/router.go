package handlers

import "net/http"

// Router builds the route table. Kept out of main so tests can mount the
// full API against an in-memory store.
func Router(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Sets
	mux.HandleFunc("GET /sets", h.ListSets)
	mux.HandleFunc("GET /sets/{setID}", h.GetSet)
	mux.HandleFunc("GET /sets/{setID}/image", h.GetSetImage)
	mux.HandleFunc("POST /sets", h.CreateSet)
	mux.HandleFunc("DELETE /sets/{setID}", h.DeleteSet)

	// Favorites
	mux.HandleFunc("POST /usersets", h.AddFavorite)
	mux.HandleFunc("GET /usersets", h.ListFavorites)

	// Cards
	mux.HandleFunc("POST /cards", h.CreateCard)
	mux.HandleFunc("GET /cards", h.ListCards)
	mux.HandleFunc("GET /cards/learn", h.LearnCards)
	mux.HandleFunc("GET /cards/{cardID}/image", h.GetCardImage)

	// Learnings
	mux.HandleFunc("POST /learnings", h.RecordLearning)
	mux.HandleFunc("GET /learnings", h.ListLearnings)

	// Development seed data
	mux.HandleFunc("GET /init", h.Seed)

	return mux
}
