package board

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/alfredjeanlab/diadi/internal/lifecycle"
	"github.com/alfredjeanlab/diadi/internal/model"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2026, 10, d, 9, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func session(id string, status model.Status, created time.Time) model.Session {
	return model.Session{
		ID:        id,
		Goal:      "Goal " + id,
		Status:    status,
		CreatedAt: created,
		Participants: []model.Participant{
			{Name: "Owner", Role: model.RoleCreator},
			{Name: "Partner " + id, Role: model.RoleInvitee},
		},
	}
}

func TestNewCard(t *testing.T) {
	s := session("s1", model.StatusReady, day(1))
	s.Title = "Equity talk"
	s.ScheduledAt = ptr(day(25))

	c, err := NewCard(s, Options{Now: now})
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	want := Card{
		ID:       "s1",
		Title:    "Equity talk",
		Goal:     "Goal s1",
		Status:   model.StatusReady,
		Group:    model.GroupActive,
		Label:    "Ready for Facilitation",
		Category: model.CategoryActive,
		Action: lifecycle.Action{
			CTAText:                 "Join Session",
			Destination:             "/sessions/s1/live",
			Live:                    true,
			DetailRoute:             "/sessions/s1",
			ShowSecondaryDetailLink: true,
		},
		Partner:         "Partner s1",
		PartnerPresent:  true,
		DisplayDate:     day(25),
		DisplayDateText: "Oct 25",
		Scheduled:       true,
	}
	if !reflect.DeepEqual(c, want) {
		t.Errorf("NewCard() =\n%+v\nwant\n%+v", c, want)
	}
}

func TestNewCard_CompactAndFallbacks(t *testing.T) {
	s := session("s2", model.StatusInProgress, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))
	s.Participants = []model.Participant{{Name: "Fac", Role: model.RoleFacilitator}}

	c, err := NewCard(s, Options{Variant: model.VariantCompact, Now: now})
	if err != nil {
		t.Fatalf("NewCard: %v", err)
	}
	if c.Title != "Goal s2" {
		t.Errorf("Title = %q, want goal fallback", c.Title)
	}
	if c.Label != "Live" {
		t.Errorf("Label = %q, want %q", c.Label, "Live")
	}
	if c.Partner != "Partner" || c.PartnerPresent {
		t.Errorf("Partner = %q present=%v, want placeholder", c.Partner, c.PartnerPresent)
	}
	if c.DisplayDateText != "Feb 3, 2025" {
		t.Errorf("DisplayDateText = %q", c.DisplayDateText)
	}
	if c.Scheduled {
		t.Error("Scheduled = true for unscheduled session")
	}
	if c.Action.ShowSecondaryDetailLink {
		t.Error("in_progress must not show the secondary detail link")
	}
}

func TestNewCard_Errors(t *testing.T) {
	if _, err := NewCard(model.Session{ID: "x", Status: "bogus", CreatedAt: now}, Options{}); !errors.Is(err, model.ErrUnknownStatus) {
		t.Errorf("unknown status: err = %v", err)
	}
	if _, err := NewCard(model.Session{ID: "x", Status: model.StatusEnded}, Options{}); !errors.Is(err, lifecycle.ErrMissingDisplayDate) {
		t.Errorf("missing date: err = %v", err)
	}
	if _, err := NewCard(session("x", model.StatusEnded, now), Options{Variant: "tiny"}); !errors.Is(err, lifecycle.ErrUnknownVariant) {
		t.Errorf("bad variant: err = %v", err)
	}
	partial := Options{Routes: lifecycle.Routes{Detail: "/sessions/{id}"}}
	if _, err := NewCard(session("x", model.StatusReady, now), partial); !errors.Is(err, lifecycle.ErrInvalidRoute) {
		t.Errorf("partial routes: err = %v", err)
	}
}

func TestNewCard_DoesNotMutate(t *testing.T) {
	s := session("s1", model.StatusPaused, day(1))
	s.ScheduledAt = ptr(day(3))
	before := s
	before.Participants = append([]model.Participant(nil), s.Participants...)
	schedBefore := *s.ScheduledAt

	if _, err := NewCard(s, Options{Now: now}); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s.Participants, before.Participants) || !s.ScheduledAt.Equal(schedBefore) || s.Status != before.Status {
		t.Error("NewCard mutated its input")
	}
}

func TestBuild(t *testing.T) {
	sessions := []model.Session{
		session("past-old", model.StatusEnded, day(1)),
		session("up-late", model.StatusDraft, day(9)),
		session("act-b", model.StatusPaused, day(5)),
		session("past-new", model.StatusArchived, day(4)),
		session("up-early", model.StatusPendingConsent, day(2)),
		session("act-a", model.StatusReady, day(5)),
		session("act-first", model.StatusInProgress, day(3)),
	}

	b, err := Build(sessions, Options{Now: now})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	ids := func(cards []Card) []string {
		out := make([]string, len(cards))
		for i, c := range cards {
			out[i] = c.ID
		}
		return out
	}
	for _, tc := range []struct {
		group model.Group
		want  []string
	}{
		{model.GroupActive, []string{"act-first", "act-a", "act-b"}},
		{model.GroupUpcoming, []string{"up-early", "up-late"}},
		{model.GroupPast, []string{"past-new", "past-old"}},
	} {
		if got := ids(b.Lane(tc.group)); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Lane(%q) = %v, want %v", tc.group, got, tc.want)
		}
	}

	if b.Total() != len(sessions) {
		t.Errorf("Total() = %d, want %d", b.Total(), len(sessions))
	}
	counts := b.Counts()
	if counts[model.GroupActive] != 3 || counts[model.GroupUpcoming] != 2 || counts[model.GroupPast] != 2 {
		t.Errorf("Counts() = %v", counts)
	}
	if got := ids(b.Cards()); len(got) != 7 || got[0] != "act-first" || got[6] != "past-old" {
		t.Errorf("Cards() = %v", got)
	}
	if _, ok := b.Find("up-late"); !ok {
		t.Error("Find(up-late) not found")
	}
	if _, ok := b.Find("missing"); ok {
		t.Error("Find(missing) found")
	}
	if b.Lane("future") != nil {
		t.Error("Lane(future) should be nil")
	}
}

func TestBuild_Empty(t *testing.T) {
	b, err := Build(nil, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if b.Total() != 0 || b.Active == nil || b.Upcoming == nil || b.Past == nil {
		t.Errorf("empty board = %+v", b)
	}
}

func TestBuild_FailsLoudly(t *testing.T) {
	sessions := []model.Session{
		session("ok", model.StatusReady, day(1)),
		session("bad", "cancelled", day(1)),
	}
	_, err := Build(sessions, Options{})
	if !errors.Is(err, model.ErrUnknownStatus) {
		t.Fatalf("Build error = %v, want ErrUnknownStatus", err)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	sessions := []model.Session{
		session("a", model.StatusReady, day(1)),
		session("b", model.StatusEnded, day(2)),
	}
	b1, err1 := Build(sessions, Options{Now: now})
	b2, err2 := Build(sessions, Options{Now: now})
	if err1 != nil || err2 != nil {
		t.Fatalf("errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(b1, b2) {
		t.Error("Build is not idempotent")
	}
	if sessions[0].ID != "a" || sessions[1].ID != "b" {
		t.Error("Build reordered its input")
	}
}
