package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"creative-pulse/internal/core/domain"
	"creative-pulse/internal/core/port"
)

type todoRequest struct {
	Text string `json:"text"`
}

func (h *Handler) handleListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todos.ListTodos(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "List")
		return
	}
	h.writeJSON(w, r, http.StatusOK, todos)
}

func (h *Handler) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var req todoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeErrorMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	t, err := h.todos.CreateTodo(r.Context(), chi.URLParam(r, "id"), req.Text)
	if err != nil {
		h.writeError(w, r, err, "List")
		return
	}
	h.writeJSON(w, r, http.StatusCreated, t)
}

// scopedTodo loads the todo named by the route. Under /lists/{id} the todo
// must also belong to that list.
func (h *Handler) scopedTodo(r *http.Request) (*domain.Todo, error) {
	id := chi.URLParam(r, "todoId")
	t, err := h.todos.GetTodo(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if listID := chi.URLParam(r, "id"); listID != "" && t.ListID != listID {
		return nil, fmt.Errorf("todo %q in list %q: %w", id, listID, port.ErrNotFound)
	}
	return t, nil
}

func (h *Handler) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	t, err := h.scopedTodo(r)
	if err != nil {
		h.writeError(w, r, err, "Todo")
		return
	}
	h.writeJSON(w, r, http.StatusOK, t)
}

func (h *Handler) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	var p domain.TodoPatch
	if err := decodeJSON(w, r, &p); err != nil {
		h.writeErrorMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	t, err := h.scopedTodo(r)
	if err != nil {
		h.writeError(w, r, err, "Todo")
		return
	}
	updated, err := h.todos.UpdateTodo(r.Context(), t.ID, p)
	if err != nil {
		h.writeError(w, r, err, "Todo")
		return
	}
	h.writeJSON(w, r, http.StatusOK, updated)
}

func (h *Handler) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	t, err := h.scopedTodo(r)
	if err != nil {
		h.writeError(w, r, err, "Todo")
		return
	}
	if err = h.todos.DeleteTodo(r.Context(), t.ID); err != nil {
		h.writeError(w, r, err, "Todo")
		return
	}
	h.writeJSON(w, r, http.StatusOK, successResponse{Success: true})
}
