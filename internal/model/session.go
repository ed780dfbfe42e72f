package model

import "time"

// Role identifies what part a participant plays in a session.
type Role string

const (
	RoleCreator     Role = "creator"
	RoleInvitee     Role = "invitee"
	RoleFacilitator Role = "facilitator"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks whether the role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCreator, RoleInvitee, RoleFacilitator:
		return true
	}
	return false
}

// Participant is one member of a session.
type Participant struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Role      Role   `json:"role"`
	Consented bool   `json:"consented,omitempty"`
}

// Session is a scheduled or ongoing facilitated conversation.
// Sessions are supplied by the caller and are never mutated by this module.
type Session struct {
	ID           string        `json:"id"`
	Title        string        `json:"title,omitempty"`
	Goal         string        `json:"goal"`
	Status       Status        `json:"status"`
	Participants []Participant `json:"participants,omitempty"`
	ScheduledAt  *time.Time    `json:"scheduled_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// MaxGoalLength is the maximum number of characters in a session goal.
const MaxGoalLength = 200
