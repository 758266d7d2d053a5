package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/flashdeck/flashdeck-api/apperr"
)

type createSetRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Creator     string `json:"creator" validate:"required"`
	Private     bool   `json:"private"`
}

// GET /sets
func (h *Handler) ListSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.Catalog.ListPublicSets()
	if err != nil {
		respondError(w, "ListSets", err)
		return
	}
	respondJSON(w, http.StatusOK, sets)
}

// GET /sets/{setID}
func (h *Handler) GetSet(w http.ResponseWriter, r *http.Request) {
	set, err := h.Catalog.GetSet(r.PathValue("setID"))
	if err != nil {
		respondError(w, "GetSet", err)
		return
	}
	respondJSON(w, http.StatusOK, set)
}

// POST /sets
func (h *Handler) CreateSet(w http.ResponseWriter, r *http.Request) {
	var req createSetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, "CreateSet", err)
		return
	}

	image, err := decodeImage(req.Image)
	if err != nil {
		respondError(w, "CreateSet", err)
		return
	}

	set, err := h.Catalog.CreateSet(req.Title, req.Description, image, req.Creator, req.Private)
	if err != nil {
		respondError(w, "CreateSet", err)
		return
	}
	respondJSON(w, http.StatusCreated, set)
}

// DELETE /sets/{setID}
func (h *Handler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteSet(r.PathValue("setID")); err != nil {
		respondError(w, "DeleteSet", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GET /sets/{setID}/image
func (h *Handler) GetSetImage(w http.ResponseWriter, r *http.Request) {
	set, err := h.Catalog.GetSet(r.PathValue("setID"))
	if err != nil {
		respondError(w, "GetSetImage", err)
		return
	}
	if len(set.ImageData) == 0 {
		respondError(w, "GetSetImage", apperr.NotFoundf("set %s has no image", set.PublicID))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(set.ImageData)
}

// decodeImage turns an optional base64 request field into raw bytes. Images
// arrive base64-encoded and are stored with a fixed png media type.
func decodeImage(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, apperr.Validationf("image must be base64: %v", err)
	}
	return data, nil
}
