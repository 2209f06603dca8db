package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type listRequest struct {
	Name string `json:"name"`
}

func (h *Handler) handleListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.todos.ListLists(r.Context())
	if err != nil {
		h.writeError(w, r, err, "List")
		return
	}
	h.writeJSON(w, r, http.StatusOK, lists)
}

func (h *Handler) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeErrorMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	l, err := h.todos.CreateList(r.Context(), req.Name)
	if err != nil {
		h.writeError(w, r, err, "List")
		return
	}
	h.writeJSON(w, r, http.StatusCreated, l)
}

func (h *Handler) handleGetList(w http.ResponseWriter, r *http.Request) {
	l, err := h.todos.GetList(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "List")
		return
	}
	h.writeJSON(w, r, http.StatusOK, l)
}

func (h *Handler) handleRenameList(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeErrorMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	l, err := h.todos.RenameList(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		h.writeError(w, r, err, "List")
		return
	}
	h.writeJSON(w, r, http.StatusOK, l)
}

// handleDeleteList removes the list together with its todos.
func (h *Handler) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	if err := h.todos.DeleteList(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "List")
		return
	}
	h.writeJSON(w, r, http.StatusOK, successResponse{Success: true})
}
