package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alfredjeanlab/diadi/internal/lifecycle"
	"github.com/alfredjeanlab/diadi/internal/model"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 4 << 20

// NewHTTPHandler returns an http.Handler with all routes registered.
// When authToken is non-empty, requests (except GET /v1/health) must include
// a valid Authorization: Bearer <token> header.
func (s *BoardServer) NewHTTPHandler(authToken string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/health", s.handleHealth)
	mux.HandleFunc("GET /v1/statuses", s.handleListStatuses)
	mux.HandleFunc("POST /v1/board", s.handleBuildBoard)
	mux.HandleFunc("POST /v1/sessions/resolve", s.handleResolveSession)

	var h http.Handler = mux
	h = AuthMiddleware(authToken, h)
	h = RecoveryMiddleware(s.logger, h)
	h = LoggingMiddleware(s.logger, h)
	return h
}

// handleHealth handles GET /v1/health.
func (s *BoardServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDerivationError maps core errors onto HTTP status codes.
func writeDerivationError(w http.ResponseWriter, err error) {
	var (
		ve *model.ValidationError
		br *badRequestError
	)
	switch {
	case errors.As(err, &br):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &ve),
		errors.Is(err, model.ErrUnknownStatus),
		errors.Is(err, lifecycle.ErrMissingDisplayDate),
		errors.Is(err, lifecycle.ErrMissingID):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
