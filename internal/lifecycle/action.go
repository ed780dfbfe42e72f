package lifecycle

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/alfredjeanlab/diadi/internal/model"
)

// ErrMissingID is returned when a route is requested for a session without an ID.
var ErrMissingID = errors.New("session id is required")

// ErrInvalidRoute is returned when a route template cannot address a session.
var ErrInvalidRoute = errors.New("invalid route template")

// idPlaceholder is substituted with the escaped session ID in route templates.
const idPlaceholder = "{id}"

// CTA wording for the primary action.
const (
	CTAJoin   = "Join Session"
	CTARejoin = "Rejoin Session"
	CTAResume = "Resume Session"
	CTAView   = "View Session"
)

// Routes holds the live and detail route templates. Both contain "{id}".
type Routes struct {
	Live   string `toml:"live" json:"live"`
	Detail string `toml:"detail" json:"detail"`
}

// DefaultRoutes returns the standard dashboard routes.
func DefaultRoutes() Routes {
	return Routes{
		Live:   "/sessions/{id}/live",
		Detail: "/sessions/{id}",
	}
}

// Validate checks that both templates carry the ID placeholder.
func (r Routes) Validate() error {
	if !strings.Contains(r.Live, idPlaceholder) {
		return fmt.Errorf("%w: live route %q must contain %s", ErrInvalidRoute, r.Live, idPlaceholder)
	}
	if !strings.Contains(r.Detail, idPlaceholder) {
		return fmt.Errorf("%w: detail route %q must contain %s", ErrInvalidRoute, r.Detail, idPlaceholder)
	}
	return nil
}

// LiveRoute returns the live surface route for a session ID.
func (r Routes) LiveRoute(id string) (string, error) {
	return expand(r.Live, id)
}

// DetailRoute returns the detail surface route for a session ID.
func (r Routes) DetailRoute(id string) (string, error) {
	return expand(r.Detail, id)
}

func expand(tmpl, id string) (string, error) {
	if !strings.Contains(tmpl, idPlaceholder) {
		return "", fmt.Errorf("%w: %q must contain %s", ErrInvalidRoute, tmpl, idPlaceholder)
	}
	if strings.TrimSpace(id) == "" {
		return "", ErrMissingID
	}
	return strings.ReplaceAll(tmpl, idPlaceholder, url.PathEscape(id)), nil
}

// Action is the primary call to action for a session.
type Action struct {
	CTAText     string `json:"cta_text"`
	Destination string `json:"destination"`
	// Live is true when Destination is the live surface.
	Live bool `json:"live"`
	// DetailRoute is always set, whether or not the secondary link is shown.
	DetailRoute             string `json:"detail_route"`
	ShowSecondaryDetailLink bool   `json:"show_secondary_detail_link"`
}

// ResolveAction derives the action for s using DefaultRoutes.
func ResolveAction(s model.Session) (Action, error) {
	return DefaultRoutes().ResolveAction(s)
}

// ResolveAction derives the call to action, destination route and whether a
// secondary detail link should be offered. It is the single place these
// decisions are made. Templates are validated on every call.
func (r Routes) ResolveAction(s model.Session) (Action, error) {
	if err := r.Validate(); err != nil {
		return Action{}, err
	}
	var (
		cta       string
		live      bool
		secondary bool
	)
	switch s.Status {
	case model.StatusReady:
		cta, live, secondary = CTAJoin, true, true
	case model.StatusInProgress:
		cta, live, secondary = CTARejoin, true, false
	case model.StatusPaused:
		cta, live, secondary = CTAResume, true, false
	case model.StatusDraft, model.StatusPendingConsent, model.StatusEnded, model.StatusArchived:
		cta, live, secondary = CTAView, false, true
	default:
		return Action{}, &model.UnknownStatusError{Status: s.Status}
	}

	detail, err := r.DetailRoute(s.ID)
	if err != nil {
		return Action{}, err
	}
	dest := detail
	if live {
		if dest, err = r.LiveRoute(s.ID); err != nil {
			return Action{}, err
		}
	}

	return Action{
		CTAText:                 cta,
		Destination:             dest,
		Live:                    live,
		DetailRoute:             detail,
		ShowSecondaryDetailLink: secondary,
	}, nil
}
