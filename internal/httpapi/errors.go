package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/DoyleJ11/lol-stats-backend/internal/catalog"
	"github.com/DoyleJ11/lol-stats-backend/internal/hub"
	"github.com/DoyleJ11/lol-stats-backend/internal/recent"
	"github.com/DoyleJ11/lol-stats-backend/internal/types"
)

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrChampionNotFound),
		errors.Is(err, catalog.ErrPlayerNotFound),
		errors.Is(err, catalog.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest), errors.Is(err, recent.ErrMissingClient):
		return http.StatusBadRequest
	case errors.Is(err, hub.ErrHubStopped),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, types.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
