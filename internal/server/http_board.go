package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alfredjeanlab/diadi/internal/board"
	"github.com/alfredjeanlab/diadi/internal/model"
	"github.com/alfredjeanlab/diadi/internal/sessionfile"
)

// handleListStatuses handles GET /v1/statuses.
func (s *BoardServer) handleListStatuses(w http.ResponseWriter, _ *http.Request) {
	rows, err := board.StatusTable()
	if err != nil {
		writeDerivationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"statuses": rows})
}

// boardResponse is the body of POST /v1/board.
type boardResponse struct {
	*board.Board
	Counts map[model.Group]int `json:"counts"`
	Total  int                 `json:"total"`
}

// handleBuildBoard handles POST /v1/board.
// The body is a session feed; query parameters: group (repeatable), status
// (repeatable), variant.
func (s *BoardServer) handleBuildBoard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, err := s.options(q.Get("variant"))
	if err != nil {
		writeDerivationError(w, err)
		return
	}

	var filter board.Filter
	for _, g := range q["group"] {
		group := model.Group(g)
		if !group.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid group "+g)
			return
		}
		filter.Groups = append(filter.Groups, group)
	}
	for _, raw := range q["status"] {
		st, err := model.ParseStatus(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Statuses = append(filter.Statuses, st)
	}

	sessions, err := sessionfile.Read(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		if isDecodeError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeDerivationError(w, err)
		return
	}

	b, err := board.Build(sessions, opts)
	if err != nil {
		s.logger.Warn("board build failed", "err", err)
		writeDerivationError(w, err)
		return
	}
	b = b.Apply(filter)

	writeJSON(w, http.StatusOK, boardResponse{Board: b, Counts: b.Counts(), Total: b.Total()})
}

// handleResolveSession handles POST /v1/sessions/resolve.
func (s *BoardServer) handleResolveSession(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r.URL.Query().Get("variant"))
	if err != nil {
		writeDerivationError(w, err)
		return
	}

	var sess model.Session
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&sess); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := model.ValidateSession(&sess); err != nil {
		writeDerivationError(w, err)
		return
	}

	card, err := board.NewCard(sess, opts)
	if err != nil {
		writeDerivationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// isDecodeError reports whether err came from JSON decoding rather than validation.
func isDecodeError(err error) bool {
	var ve *model.ValidationError
	return !errors.As(err, &ve)
}
