// Package board assembles dashboard cards and lanes from sessions. Every
// surface (card, list row, badge, HTTP response) renders from the Card built
// here so that none of them re-derive status semantics on their own.
package board

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alfredjeanlab/diadi/internal/lifecycle"
	"github.com/alfredjeanlab/diadi/internal/model"
)

// Options controls how cards are derived.
type Options struct {
	Routes  lifecycle.Routes
	Variant model.LabelVariant
	// Now is the reference time for date formatting. Zero means time.Now().
	Now time.Time
}

func (o Options) withDefaults() Options {
	if o.Routes == (lifecycle.Routes{}) {
		o.Routes = lifecycle.DefaultRoutes()
	}
	if o.Variant == "" {
		o.Variant = model.VariantProminent
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// Card is the derived, display-ready view of one session.
type Card struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Goal            string           `json:"goal"`
	Status          model.Status     `json:"status"`
	Group           model.Group      `json:"group"`
	Label           string           `json:"label"`
	Category        model.Category   `json:"category"`
	Action          lifecycle.Action `json:"action"`
	Partner         string           `json:"partner"`
	PartnerPresent  bool             `json:"partner_present"`
	DisplayDate     time.Time        `json:"display_date"`
	DisplayDateText string           `json:"display_date_text"`
	Scheduled       bool             `json:"scheduled"`
}

// NewCard derives a Card from s. s is not modified.
func NewCard(s model.Session, opts Options) (Card, error) {
	opts = opts.withDefaults()

	group, err := lifecycle.ClassifyGroup(s.Status)
	if err != nil {
		return Card{}, err
	}
	label, err := lifecycle.Label(s.Status, opts.Variant)
	if err != nil {
		return Card{}, err
	}
	category, err := lifecycle.StyleCategory(s.Status)
	if err != nil {
		return Card{}, err
	}
	action, err := opts.Routes.ResolveAction(s)
	if err != nil {
		return Card{}, err
	}
	date, err := lifecycle.ResolveDisplayDate(s)
	if err != nil {
		return Card{}, err
	}
	_, present := lifecycle.ResolvePartner(s.Participants)

	title := strings.TrimSpace(s.Title)
	if title == "" {
		title = strings.TrimSpace(s.Goal)
	}

	return Card{
		ID:              s.ID,
		Title:           title,
		Goal:            s.Goal,
		Status:          s.Status,
		Group:           group,
		Label:           label,
		Category:        category,
		Action:          action,
		Partner:         lifecycle.PartnerName(s.Participants, opts.Variant),
		PartnerPresent:  present,
		DisplayDate:     date,
		DisplayDateText: lifecycle.FormatDisplayDate(date, opts.Now),
		Scheduled:       s.ScheduledAt != nil && !s.ScheduledAt.IsZero(),
	}, nil
}

// Board holds cards bucketed into lanes.
type Board struct {
	Active   []Card `json:"active"`
	Upcoming []Card `json:"upcoming"`
	Past     []Card `json:"past"`
}

// Build derives a card for every session and buckets them by group. Active and
// upcoming lanes are ordered soonest first, the past lane most recent first.
// The first derivation failure aborts the build.
func Build(sessions []model.Session, opts Options) (*Board, error) {
	opts = opts.withDefaults()
	b := &Board{
		Active:   []Card{},
		Upcoming: []Card{},
		Past:     []Card{},
	}
	for _, s := range sessions {
		c, err := NewCard(s, opts)
		if err != nil {
			return nil, fmt.Errorf("session %q: %w", s.ID, err)
		}
		switch c.Group {
		case model.GroupActive:
			b.Active = append(b.Active, c)
		case model.GroupUpcoming:
			b.Upcoming = append(b.Upcoming, c)
		case model.GroupPast:
			b.Past = append(b.Past, c)
		}
	}
	sortCards(b.Active, false)
	sortCards(b.Upcoming, false)
	sortCards(b.Past, true)
	return b, nil
}

func sortCards(cards []Card, newestFirst bool) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i].DisplayDate, cards[j].DisplayDate
		if !a.Equal(b) {
			if newestFirst {
				return a.After(b)
			}
			return a.Before(b)
		}
		return cards[i].ID < cards[j].ID
	})
}

// Lane returns the cards for g. Unknown groups return nil.
func (b *Board) Lane(g model.Group) []Card {
	switch g {
	case model.GroupActive:
		return b.Active
	case model.GroupUpcoming:
		return b.Upcoming
	case model.GroupPast:
		return b.Past
	}
	return nil
}

// Counts returns the number of cards per group.
func (b *Board) Counts() map[model.Group]int {
	return map[model.Group]int{
		model.GroupActive:   len(b.Active),
		model.GroupUpcoming: len(b.Upcoming),
		model.GroupPast:     len(b.Past),
	}
}

// Total returns the number of cards on the board.
func (b *Board) Total() int {
	return len(b.Active) + len(b.Upcoming) + len(b.Past)
}

// Cards returns every card in lane order: active, upcoming, past.
func (b *Board) Cards() []Card {
	out := make([]Card, 0, b.Total())
	for _, g := range model.Groups() {
		out = append(out, b.Lane(g)...)
	}
	return out
}

// Find returns the card with the given ID.
func (b *Board) Find(id string) (Card, bool) {
	for _, g := range model.Groups() {
		for _, c := range b.Lane(g) {
			if c.ID == id {
				return c, true
			}
		}
	}
	return Card{}, false
}
