package model

import "strings"

// Status is the lifecycle stage of a session. The set is closed.
type Status string

// Statuses in lifecycle order.
const (
	StatusDraft          Status = "draft"
	StatusPendingConsent Status = "pending_consent"
	StatusReady          Status = "ready"
	StatusInProgress     Status = "in_progress"
	StatusPaused         Status = "paused"
	StatusEnded          Status = "ended"
	StatusArchived       Status = "archived"
)

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{
		StatusDraft,
		StatusPendingConsent,
		StatusReady,
		StatusInProgress,
		StatusPaused,
		StatusEnded,
		StatusArchived,
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks whether the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingConsent, StatusReady, StatusInProgress,
		StatusPaused, StatusEnded, StatusArchived:
		return true
	}
	return false
}

// Order returns the zero-based lifecycle position of s, or -1 if s is not valid.
func (s Status) Order() int {
	for i, v := range Statuses() {
		if v == s {
			return i
		}
	}
	return -1
}

// ParseStatus converts a raw value into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if !s.IsValid() {
		return "", &UnknownStatusError{Status: Status(raw)}
	}
	return s, nil
}

// Group is a coarse lifecycle bucket used for visual organisation only.
type Group string

const (
	GroupActive   Group = "active"
	GroupUpcoming Group = "upcoming"
	GroupPast     Group = "past"
)

// Groups returns the groups in dashboard display order.
func Groups() []Group {
	return []Group{GroupActive, GroupUpcoming, GroupPast}
}

// String returns the string representation of the group.
func (g Group) String() string {
	return string(g)
}

// IsValid checks whether the group is a known value.
func (g Group) IsValid() bool {
	switch g {
	case GroupActive, GroupUpcoming, GroupPast:
		return true
	}
	return false
}

// Category selects the colour treatment for a status badge.
type Category string

const (
	CategoryActive  Category = "active"
	CategoryWarning Category = "warning"
	CategoryInfo    Category = "info"
	CategoryNeutral Category = "neutral"
)

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks whether the category is a known value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryActive, CategoryWarning, CategoryInfo, CategoryNeutral:
		return true
	}
	return false
}

// LabelVariant picks between the long and short status wording.
// Prominent is used on cards and detail headers, Compact in list rows.
type LabelVariant string

const (
	VariantProminent LabelVariant = "prominent"
	VariantCompact   LabelVariant = "compact"
)

// String returns the string representation of the variant.
func (v LabelVariant) String() string {
	return string(v)
}

// IsValid checks whether the variant is a known value.
func (v LabelVariant) IsValid() bool {
	switch v {
	case VariantProminent, VariantCompact:
		return true
	}
	return false
}
