package core

import (
	"fmt"
	"time"
)

// ValidationKind identifies which precondition a ValidationError reports.
type ValidationKind string

const (
	IllegalTransition  ValidationKind = "illegal_transition"
	TaskNotCompleted   ValidationKind = "task_not_completed"
	SelfRating         ValidationKind = "self_rating"
	DuplicateRating    ValidationKind = "duplicate_rating"
	DuplicateRequest   ValidationKind = "duplicate_request"
	BadRatingValue     ValidationKind = "bad_rating_value"
	TaskNotOpen        ValidationKind = "task_not_open"
	RequestNotResolved ValidationKind = "request_not_resolved"
)

// ValidationError is a recoverable rule violation. For transition failures
// From and To carry the offending pair.
type ValidationError struct {
	Kind   ValidationKind
	Detail string
	From   string
	To     string
}

func (e *ValidationError) Error() string {
	if e.Kind == IllegalTransition {
		return fmt.Sprintf("illegal transition from %q to %q", e.From, e.To)
	}
	return e.Detail
}

// InvalidRangeError reports a time window whose start is not before its end.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid time range: start %s is not before end %s",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// AvailabilityConflictError names the committed task whose window overlaps
// the candidate assignment.
type AvailabilityConflictError struct {
	WorkerID       uint
	ConflictTaskID uint
}

func (e *AvailabilityConflictError) Error() string {
	return fmt.Sprintf("worker %d already has task %d in the requested window",
		e.WorkerID, e.ConflictTaskID)
}

// NotFoundError reports an absent referenced entity.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// PermissionError reports an actor acting on an entity it does not own.
type PermissionError struct {
	Detail string
}

func (e *PermissionError) Error() string {
	return e.Detail
}
