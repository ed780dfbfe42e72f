package board

import (
	"github.com/alfredjeanlab/diadi/internal/lifecycle"
	"github.com/alfredjeanlab/diadi/internal/model"
)

// StatusRow describes one status of the taxonomy with all of its derivations.
type StatusRow struct {
	Status   model.Status   `json:"status"`
	Order    int            `json:"order"`
	Group    model.Group    `json:"group"`
	Label    string         `json:"label"`
	Compact  string         `json:"compact_label"`
	Category model.Category `json:"category"`
	CTAText  string         `json:"cta_text"`
	Live     bool           `json:"live"`
	Next     []model.Status `json:"next"`
	Terminal bool           `json:"terminal"`
}

// StatusTable derives a row for every status in lifecycle order.
func StatusTable() ([]StatusRow, error) {
	rows := make([]StatusRow, 0, len(model.Statuses()))
	for _, st := range model.Statuses() {
		group, err := lifecycle.ClassifyGroup(st)
		if err != nil {
			return nil, err
		}
		label, err := lifecycle.Label(st, model.VariantProminent)
		if err != nil {
			return nil, err
		}
		compact, err := lifecycle.Label(st, model.VariantCompact)
		if err != nil {
			return nil, err
		}
		category, err := lifecycle.StyleCategory(st)
		if err != nil {
			return nil, err
		}
		// Any non-empty ID yields the CTA; the routes are not reported here.
		action, err := lifecycle.ResolveAction(model.Session{ID: "_", Status: st})
		if err != nil {
			return nil, err
		}
		next := model.NextStatuses(st)
		if next == nil {
			next = []model.Status{}
		}
		rows = append(rows, StatusRow{
			Status:   st,
			Order:    st.Order(),
			Group:    group,
			Label:    label,
			Compact:  compact,
			Category: category,
			CTAText:  action.CTAText,
			Live:     action.Live,
			Next:     next,
			Terminal: model.IsTerminal(st),
		})
	}
	return rows, nil
}
