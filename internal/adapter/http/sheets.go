package httpadapter

import (
	"errors"
	"net/http"

	"creative-pulse/internal/core/port"
)

type sheetResponse struct {
	Success bool                `json:"success"`
	Data    []map[string]string `json:"data"`
	Count   int                 `json:"count"`
}

type sheetErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details"`
}

// handleSheets reads the configured spreadsheet, or the range given in the
// range query parameter, and returns its rows keyed by the header row.
func (h *Handler) handleSheets(w http.ResponseWriter, r *http.Request) {
	rows, err := h.sheets.Rows(r.Context(), r.URL.Query().Get("range"))
	if err != nil {
		if !errors.Is(err, port.ErrUpstream) {
			h.writeError(w, r, err, "Sheet")
			return
		}
		h.writeJSON(w, r, http.StatusInternalServerError, sheetErrorResponse{
			Success: false,
			Error:   "Failed to read Google Sheet",
			Details: reason(err, port.ErrUpstream),
		})
		return
	}
	h.writeJSON(w, r, http.StatusOK, sheetResponse{Success: true, Data: rows, Count: len(rows)})
}
