package model

// transitions lists the allowed lifecycle edges. Paused is the only status
// that can move backwards (to in_progress).
var transitions = map[Status][]Status{
	StatusDraft:          {StatusPendingConsent},
	StatusPendingConsent: {StatusReady},
	StatusReady:          {StatusInProgress},
	StatusInProgress:     {StatusPaused, StatusEnded},
	StatusPaused:         {StatusInProgress, StatusEnded},
	StatusEnded:          {StatusArchived},
	StatusArchived:       nil,
}

// NextStatuses returns the statuses reachable from s in one step.
// Terminal and invalid statuses return nil.
func NextStatuses(s Status) []Status {
	next := transitions[s]
	if len(next) == 0 {
		return nil
	}
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether a session may move from one status to another.
func CanTransition(from, to Status) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition validates a single lifecycle step.
func Transition(from, to Status) error {
	if !from.IsValid() {
		return &UnknownStatusError{Status: from}
	}
	if !to.IsValid() {
		return &UnknownStatusError{Status: to}
	}
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

// IsTerminal reports whether no further transition is possible from s.
func IsTerminal(s Status) bool {
	return s.IsValid() && len(transitions[s]) == 0
}
