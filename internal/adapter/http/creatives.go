package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"creative-pulse/internal/core/domain"
)

// handleListCreatives returns all creatives, optionally narrowed by the
// status, platform, type and search query parameters. Filters combine.
func (h *Handler) handleListCreatives(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.CreativeFilter{
		Status:   domain.CreativeStatus(q.Get("status")),
		Platform: domain.Platform(q.Get("platform")),
		Type:     domain.CreativeType(q.Get("type")),
		Search:   q.Get("search"),
	}
	creatives, err := h.dashboard.ListCreatives(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err, "Creative")
		return
	}
	h.writeJSON(w, r, http.StatusOK, creatives)
}

func (h *Handler) handleCreateCreative(w http.ResponseWriter, r *http.Request) {
	var c domain.Creative
	if err := decodeJSON(w, r, &c); err != nil {
		h.writeErrorMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.dashboard.CreateCreative(r.Context(), c)
	if err != nil {
		h.writeError(w, r, err, "Creative")
		return
	}
	h.writeJSON(w, r, http.StatusCreated, created)
}

func (h *Handler) handleGetCreative(w http.ResponseWriter, r *http.Request) {
	c, err := h.dashboard.GetCreative(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Creative")
		return
	}
	h.writeJSON(w, r, http.StatusOK, c)
}

// handleUpdateCreative applies a shallow merge; the id cannot change.
func (h *Handler) handleUpdateCreative(w http.ResponseWriter, r *http.Request) {
	var p domain.CreativePatch
	if err := decodeJSON(w, r, &p); err != nil {
		h.writeErrorMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	c, err := h.dashboard.UpdateCreative(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		h.writeError(w, r, err, "Creative")
		return
	}
	h.writeJSON(w, r, http.StatusOK, c)
}

func (h *Handler) handleDeleteCreative(w http.ResponseWriter, r *http.Request) {
	if err := h.dashboard.DeleteCreative(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "Creative")
		return
	}
	h.writeJSON(w, r, http.StatusOK, successResponse{Success: true})
}
