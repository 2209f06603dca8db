package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCreativePerformance returns the creative's daily rows with derived
// ratios for the requested window.
func (h *Handler) handleCreativePerformance(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r.URL.Query(), h.now())
	if err != nil {
		h.writeErrorMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}
	rows, err := h.dashboard.CreativePerformance(r.Context(), chi.URLParam(r, "id"), window)
	if err != nil {
		h.writeError(w, r, err, "Creative")
		return
	}
	h.writeJSON(w, r, http.StatusOK, rows)
}

// handleCreativeSummary collapses every row of the creative into one.
func (h *Handler) handleCreativeSummary(w http.ResponseWriter, r *http.Request) {
	agg, err := h.dashboard.CreativeAggregate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Performance data")
		return
	}
	h.writeJSON(w, r, http.StatusOK, agg)
}

func (h *Handler) handlePerformanceSummary(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r.URL.Query(), h.now())
	if err != nil {
		h.writeErrorMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}
	summary, err := h.dashboard.Summary(r.Context(), window)
	if err != nil {
		h.writeError(w, r, err, "Summary")
		return
	}
	h.writeJSON(w, r, http.StatusOK, summary)
}

func (h *Handler) handlePlatforms(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r.URL.Query(), h.now())
	if err != nil {
		h.writeErrorMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}
	platforms, err := h.dashboard.Platforms(r.Context(), window)
	if err != nil {
		h.writeError(w, r, err, "Platform")
		return
	}
	h.writeJSON(w, r, http.StatusOK, platforms)
}
