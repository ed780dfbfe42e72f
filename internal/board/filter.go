package board

import "github.com/alfredjeanlab/diadi/internal/model"

// Filter narrows a set of cards. Empty fields match everything.
type Filter struct {
	Groups   []model.Group
	Statuses []model.Status
}

// Apply returns the cards matching f, preserving order.
func (f Filter) Apply(cards []Card) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if len(f.Groups) > 0 && !containsGroup(f.Groups, c.Group) {
			continue
		}
		if len(f.Statuses) > 0 && !containsStatus(f.Statuses, c.Status) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Apply returns a new board containing only the cards matching f.
func (b *Board) Apply(f Filter) *Board {
	return &Board{
		Active:   f.Apply(b.Active),
		Upcoming: f.Apply(b.Upcoming),
		Past:     f.Apply(b.Past),
	}
}

func containsGroup(gs []model.Group, g model.Group) bool {
	for _, v := range gs {
		if v == g {
			return true
		}
	}
	return false
}

func containsStatus(ss []model.Status, s model.Status) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// CountByStatus counts sessions per status. Sessions with an unknown status
// are counted under their raw value so callers can surface them.
func CountByStatus(sessions []model.Session) map[model.Status]int {
	counts := make(map[model.Status]int, len(model.Statuses()))
	for _, s := range model.Statuses() {
		counts[s] = 0
	}
	for _, s := range sessions {
		counts[s.Status]++
	}
	return counts
}
