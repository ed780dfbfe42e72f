package lifecycle

import (
	"errors"
	"time"

	"github.com/alfredjeanlab/diadi/internal/model"
)

// ErrMissingDisplayDate means the session has neither scheduled_at nor created_at.
var ErrMissingDisplayDate = errors.New("session has no display date")

const (
	dateLayoutCurrentYear = "Jan 2"
	dateLayoutOtherYear   = "Jan 2, 2006"
)

// ResolveDisplayDate returns ScheduledAt when set, else CreatedAt.
func ResolveDisplayDate(s model.Session) (time.Time, error) {
	if s.ScheduledAt != nil && !s.ScheduledAt.IsZero() {
		return *s.ScheduledAt, nil
	}
	if s.CreatedAt.IsZero() {
		return time.Time{}, ErrMissingDisplayDate
	}
	return s.CreatedAt, nil
}

// FormatDisplayDate renders t as month and day, adding the year only when it
// differs from now's year. Both are compared in now's location.
func FormatDisplayDate(t, now time.Time) string {
	local := t.In(now.Location())
	if local.Year() == now.Year() {
		return local.Format(dateLayoutCurrentYear)
	}
	return local.Format(dateLayoutOtherYear)
}
