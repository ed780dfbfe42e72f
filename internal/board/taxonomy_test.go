package board

import (
	"testing"

	"github.com/alfredjeanlab/diadi/internal/model"
)

func TestStatusTable(t *testing.T) {
	rows, err := StatusTable()
	if err != nil {
		t.Fatalf("StatusTable: %v", err)
	}
	if len(rows) != len(model.Statuses()) {
		t.Fatalf("got %d rows, want %d", len(rows), len(model.Statuses()))
	}
	for i, r := range rows {
		if r.Order != i {
			t.Errorf("row %d (%s) Order = %d", i, r.Status, r.Order)
		}
		if r.Label == "" || r.Compact == "" || r.CTAText == "" || !r.Category.IsValid() || !r.Group.IsValid() {
			t.Errorf("row %s is incomplete: %+v", r.Status, r)
		}
		if r.Next == nil {
			t.Errorf("row %s Next is nil", r.Status)
		}
	}

	paused := rows[model.StatusPaused.Order()]
	if paused.CTAText != "Resume Session" || !paused.Live || paused.Category != model.CategoryWarning {
		t.Errorf("paused row = %+v", paused)
	}
	archived := rows[model.StatusArchived.Order()]
	if !archived.Terminal || len(archived.Next) != 0 {
		t.Errorf("archived row = %+v", archived)
	}
}
