package model

import (
	"errors"
	"testing"
)

func TestCanTransition(t *testing.T) {
	for _, tc := range []struct {
		from, to Status
		want     bool
	}{
		{StatusDraft, StatusPendingConsent, true},
		{StatusPendingConsent, StatusReady, true},
		{StatusReady, StatusInProgress, true},
		{StatusInProgress, StatusPaused, true},
		{StatusPaused, StatusInProgress, true},
		{StatusInProgress, StatusEnded, true},
		{StatusPaused, StatusEnded, true},
		{StatusEnded, StatusArchived, true},

		{StatusReady, StatusDraft, false},
		{StatusEnded, StatusInProgress, false},
		{StatusPendingConsent, StatusArchived, false},
		{StatusDraft, StatusArchived, false},
		{StatusReady, StatusPaused, false},
		{StatusArchived, StatusEnded, false},
		{StatusReady, StatusReady, false},
		{Status("bogus"), StatusReady, false},
		{StatusReady, Status("bogus"), false},
	} {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCanTransition_MonotonicExceptPause(t *testing.T) {
	for _, from := range Statuses() {
		for _, to := range NextStatuses(from) {
			if to.Order() > from.Order() {
				continue
			}
			if from != StatusPaused || to != StatusInProgress {
				t.Errorf("backward edge %s -> %s", from, to)
			}
		}
	}
}

func TestArchivedOnlyFromEnded(t *testing.T) {
	for _, from := range Statuses() {
		if CanTransition(from, StatusArchived) && from != StatusEnded {
			t.Errorf("archived reachable from %s", from)
		}
	}
}

func TestTransition_Errors(t *testing.T) {
	if err := Transition(StatusReady, StatusInProgress); err != nil {
		t.Fatalf("Transition(ready, in_progress) = %v, want nil", err)
	}

	err := Transition(StatusEnded, StatusReady)
	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransitionError, got %T (%v)", err, err)
	}
	if !errors.Is(err, ErrInvalidTransition) {
		t.Error("expected errors.Is(err, ErrInvalidTransition)")
	}
	if te.From != StatusEnded || te.To != StatusReady {
		t.Errorf("TransitionError = %+v", te)
	}

	if err := Transition("nope", StatusReady); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("Transition(nope, ready) = %v, want ErrUnknownStatus", err)
	}
	if err := Transition(StatusReady, "nope"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("Transition(ready, nope) = %v, want ErrUnknownStatus", err)
	}
}

func TestNextStatuses(t *testing.T) {
	if got := NextStatuses(StatusArchived); got != nil {
		t.Errorf("NextStatuses(archived) = %v, want nil", got)
	}
	if got := NextStatuses("bogus"); got != nil {
		t.Errorf("NextStatuses(bogus) = %v, want nil", got)
	}
	got := NextStatuses(StatusInProgress)
	if len(got) != 2 || got[0] != StatusPaused || got[1] != StatusEnded {
		t.Errorf("NextStatuses(in_progress) = %v", got)
	}
	got[0] = StatusDraft
	if NextStatuses(StatusInProgress)[0] != StatusPaused {
		t.Error("NextStatuses must return a copy")
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range Statuses() {
		want := s == StatusArchived
		if got := IsTerminal(s); got != want {
			t.Errorf("IsTerminal(%q) = %v, want %v", s, got, want)
		}
	}
	if IsTerminal("bogus") {
		t.Error("IsTerminal(bogus) = true")
	}
}
