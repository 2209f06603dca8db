package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"creative-pulse/internal/core/domain"
)

// handleListTests returns A/B tests, optionally filtered by status and by
// a participating creativeId.
func (h *Handler) handleListTests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.ABTestFilter{
		Status:     domain.TestStatus(q.Get("status")),
		CreativeID: q.Get("creativeId"),
	}
	tests, err := h.dashboard.ListTests(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err, "Test")
		return
	}
	h.writeJSON(w, r, http.StatusOK, tests)
}

func (h *Handler) handleCreateTest(w http.ResponseWriter, r *http.Request) {
	var t domain.ABTest
	if err := decodeJSON(w, r, &t); err != nil {
		h.writeErrorMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.dashboard.CreateTest(r.Context(), t)
	if err != nil {
		h.writeError(w, r, err, "Test")
		return
	}
	h.writeJSON(w, r, http.StatusCreated, created)
}

func (h *Handler) handleGetTest(w http.ResponseWriter, r *http.Request) {
	t, err := h.dashboard.GetTest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Test")
		return
	}
	h.writeJSON(w, r, http.StatusOK, t)
}

func (h *Handler) handleUpdateTest(w http.ResponseWriter, r *http.Request) {
	var p domain.ABTestPatch
	if err := decodeJSON(w, r, &p); err != nil {
		h.writeErrorMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	t, err := h.dashboard.UpdateTest(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		h.writeError(w, r, err, "Test")
		return
	}
	h.writeJSON(w, r, http.StatusOK, t)
}

type completeTestRequest struct {
	Winner string `json:"winner"`
}

// handleCompleteTest closes a running test with a winner.
func (h *Handler) handleCompleteTest(w http.ResponseWriter, r *http.Request) {
	var req completeTestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeErrorMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Winner == "" {
		h.writeErrorMessage(w, r, http.StatusBadRequest, "winner is required")
		return
	}
	t, err := h.dashboard.CompleteTest(r.Context(), chi.URLParam(r, "id"), req.Winner)
	if err != nil {
		h.writeError(w, r, err, "Test")
		return
	}
	h.writeJSON(w, r, http.StatusOK, t)
}

func (h *Handler) handleDeleteTest(w http.ResponseWriter, r *http.Request) {
	if err := h.dashboard.DeleteTest(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "Test")
		return
	}
	h.writeJSON(w, r, http.StatusOK, successResponse{Success: true})
}
