package lifecycle

import "github.com/alfredjeanlab/diadi/internal/model"

// ClassifyGroup maps a status to its coarse lifecycle group.
func ClassifyGroup(s model.Status) (model.Group, error) {
	switch s {
	case model.StatusReady, model.StatusInProgress, model.StatusPaused:
		return model.GroupActive, nil
	case model.StatusDraft, model.StatusPendingConsent:
		return model.GroupUpcoming, nil
	case model.StatusEnded, model.StatusArchived:
		return model.GroupPast, nil
	}
	return "", &model.UnknownStatusError{Status: s}
}

// StatusesIn returns the statuses belonging to g in lifecycle order.
// An unknown group yields nil.
func StatusesIn(g model.Group) []model.Status {
	var out []model.Status
	for _, s := range model.Statuses() {
		if sg, err := ClassifyGroup(s); err == nil && sg == g {
			out = append(out, s)
		}
	}
	return out
}
