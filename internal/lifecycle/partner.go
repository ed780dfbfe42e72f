package lifecycle

import (
	"strings"

	"github.com/alfredjeanlab/diadi/internal/model"
)

// Placeholder partner names used when no named invitee is present.
const (
	PartnerPlaceholder        = "Your Partner"
	PartnerPlaceholderCompact = "Partner"
)

// ResolvePartner returns the first participant with the invitee role.
// The boolean is false when there is none; that is not an error.
//
// If several invitees are present the first in sequence order wins. Upstream
// is expected to guarantee a single invitee.
func ResolvePartner(participants []model.Participant) (model.Participant, bool) {
	for _, p := range participants {
		if p.Role == model.RoleInvitee {
			return p, true
		}
	}
	return model.Participant{}, false
}

// PartnerName returns the partner's display name, falling back to the
// placeholder for the variant. Unknown variants use the prominent placeholder.
func PartnerName(participants []model.Participant, v model.LabelVariant) string {
	if p, ok := ResolvePartner(participants); ok {
		if name := strings.TrimSpace(p.Name); name != "" {
			return name
		}
	}
	if v == model.VariantCompact {
		return PartnerPlaceholderCompact
	}
	return PartnerPlaceholder
}
