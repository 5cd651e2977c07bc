package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/model"
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/service/ingester"
	"go.uber.org/zap"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status code. Internal errors are logged and
// their text is not exposed.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorBody{Error: msg})
}

func statusOf(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case model.IsDecodeError(err), errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ingester.ErrStopped),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
