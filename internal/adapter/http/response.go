package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"creative-pulse/internal/core/port"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are gone already; all we can do is log
		h.logger.ErrorContext(r.Context(), "encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeErrorMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, errorResponse{Error: msg})
}

// writeError maps a use case error onto a status code. subject names the
// entity in not-found messages, e.g. "Creative". Causes of unexpected
// errors are logged, not returned.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, subject string) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeErrorMessage(w, r, http.StatusNotFound, subject+" not found")
	case errors.Is(err, port.ErrInvalidInput):
		h.writeErrorMessage(w, r, http.StatusBadRequest, reason(err, port.ErrInvalidInput))
	case errors.Is(err, port.ErrConflict):
		h.writeErrorMessage(w, r, http.StatusConflict, reason(err, port.ErrConflict))
	case errors.Is(err, port.ErrUpstream):
		h.logger.ErrorContext(r.Context(), "upstream failure", slog.Any("error", err))
		h.writeJSON(w, r, http.StatusInternalServerError, errorResponse{
			Error:   "upstream failure",
			Details: reason(err, port.ErrUpstream),
		})
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeErrorMessage(w, r, http.StatusInternalServerError, "internal error")
	}
}

// reason strips the sentinel's own text from a wrapped error message so
// only the context added by the use case remains.
func reason(err, sentinel error) string {
	msg := err.Error()
	s := sentinel.Error()
	msg = strings.TrimSuffix(msg, ": "+s)
	msg = strings.TrimPrefix(msg, s+": ")
	if msg == "" {
		return s
	}
	return msg
}

// decodeJSON reads a JSON body of at most maxBodyBytes into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
