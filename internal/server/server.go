package server

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/alfredjeanlab/diadi/internal/board"
	"github.com/alfredjeanlab/diadi/internal/lifecycle"
	"github.com/alfredjeanlab/diadi/internal/model"
)

// BoardServer exposes the lifecycle derivations over HTTP. It holds no
// session state; every request carries the sessions it wants derived.
type BoardServer struct {
	routes  lifecycle.Routes
	variant model.LabelVariant
	logger  *slog.Logger

	// now is overridable for tests.
	now func() time.Time
}

// NewBoardServer creates a BoardServer. Routes and variant are checked up
// front so a misconfigured server never starts. A nil logger uses slog.Default().
func NewBoardServer(routes lifecycle.Routes, variant model.LabelVariant, logger *slog.Logger) (*BoardServer, error) {
	if err := routes.Validate(); err != nil {
		return nil, fmt.Errorf("board server: %w", err)
	}
	if !variant.IsValid() {
		return nil, fmt.Errorf("board server: %w %q", lifecycle.ErrUnknownVariant, variant)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BoardServer{
		routes:  routes,
		variant: variant,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// options returns board options for a request, honouring a variant override.
func (s *BoardServer) options(variant string) (board.Options, error) {
	v := s.variant
	if variant != "" {
		v = model.LabelVariant(variant)
		if !v.IsValid() {
			return board.Options{}, &badRequestError{msg: "invalid variant " + variant}
		}
	}
	return board.Options{
		Routes:  s.routes,
		Variant: v,
		Now:     s.now(),
	}, nil
}

type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }
