// Package client provides a transport-agnostic interface for the diadi board
// service and an HTTP/JSON implementation that talks to its REST API.
package client

import (
	"context"

	"github.com/alfredjeanlab/diadi/internal/board"
	"github.com/alfredjeanlab/diadi/internal/model"
)

// BoardClient is the interface CLI commands use when a board server is
// configured instead of deriving locally.
type BoardClient interface {
	// Derivation
	BuildBoard(ctx context.Context, req *BuildBoardRequest) (*BoardResponse, error)
	ResolveSession(ctx context.Context, s model.Session, variant model.LabelVariant) (*board.Card, error)

	// Taxonomy
	ListStatuses(ctx context.Context) ([]board.StatusRow, error)

	// Health
	Health(ctx context.Context) (string, error)

	// Lifecycle
	Close() error
}

// BuildBoardRequest is the input for BuildBoard.
type BuildBoardRequest struct {
	Sessions []model.Session
	Groups   []model.Group
	Statuses []model.Status
	Variant  model.LabelVariant
}

// BoardResponse is the board returned by the server, with its lane counts.
type BoardResponse struct {
	board.Board
	Counts map[model.Group]int `json:"counts"`
	Total  int                 `json:"total"`
}
