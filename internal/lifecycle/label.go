package lifecycle

import (
	"errors"
	"fmt"

	"github.com/alfredjeanlab/diadi/internal/model"
)

// ErrUnknownVariant is returned for a label variant other than prominent or compact.
var ErrUnknownVariant = errors.New("unknown label variant")

// Label returns the user-facing wording for a status.
func Label(s model.Status, v model.LabelVariant) (string, error) {
	if !v.IsValid() {
		return "", fmt.Errorf("%w %q", ErrUnknownVariant, string(v))
	}
	compact := v == model.VariantCompact

	switch s {
	case model.StatusDraft:
		return "Draft", nil
	case model.StatusPendingConsent:
		if compact {
			return "Pending", nil
		}
		return "Awaiting Consent", nil
	case model.StatusReady:
		if compact {
			return "Ready", nil
		}
		return "Ready for Facilitation", nil
	case model.StatusInProgress:
		if compact {
			return "Live", nil
		}
		return "In Progress", nil
	case model.StatusPaused:
		return "Paused", nil
	case model.StatusEnded:
		return "Ended", nil
	case model.StatusArchived:
		return "Archived", nil
	}
	return "", &model.UnknownStatusError{Status: s}
}

// StyleCategory returns the colour category for a status badge.
func StyleCategory(s model.Status) (model.Category, error) {
	switch s {
	case model.StatusReady, model.StatusInProgress:
		return model.CategoryActive, nil
	case model.StatusPaused:
		return model.CategoryWarning, nil
	case model.StatusPendingConsent:
		return model.CategoryInfo, nil
	case model.StatusDraft, model.StatusEnded, model.StatusArchived:
		return model.CategoryNeutral, nil
	}
	return "", &model.UnknownStatusError{Status: s}
}
