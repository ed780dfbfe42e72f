package model

import (
	"fmt"
	"strings"
)

// ValidationError holds a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation failure on a named field.
type FieldError struct {
	Field   string
	Message string
}

// Error formats the validation error as a semicolon-separated list of field messages.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors reports whether the validation error contains any field errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// ValidateSession checks a Session for constraint violations.
// It returns a *ValidationError if any rules fail, or nil if the session is valid.
func ValidateSession(s *Session) error {
	var ve ValidationError

	if strings.TrimSpace(s.ID) == "" {
		ve.Errors = append(ve.Errors, FieldError{Field: "id", Message: "is required"})
	}

	goal := strings.TrimSpace(s.Goal)
	if goal == "" {
		ve.Errors = append(ve.Errors, FieldError{Field: "goal", Message: "is required"})
	} else if len([]rune(goal)) > MaxGoalLength {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "goal",
			Message: fmt.Sprintf("must be %d characters or fewer", MaxGoalLength),
		})
	}

	// Status: closed set.
	if !s.Status.IsValid() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "status",
			Message: fmt.Sprintf("invalid value %q", s.Status),
		})
	}

	// CreatedAt is the display date of last resort and must always be set.
	if s.CreatedAt.IsZero() {
		ve.Errors = append(ve.Errors, FieldError{Field: "created_at", Message: "is required"})
	}
	if s.ScheduledAt != nil && s.ScheduledAt.IsZero() {
		ve.Errors = append(ve.Errors, FieldError{Field: "scheduled_at", Message: "must not be the zero time"})
	}

	for i, p := range s.Participants {
		if !p.Role.IsValid() {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   fmt.Sprintf("participants[%d].role", i),
				Message: fmt.Sprintf("invalid value %q", p.Role),
			})
		}
	}

	if ve.HasErrors() {
		return &ve
	}
	return nil
}
