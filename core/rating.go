package core

import "fmt"

// Rating values are a 1-5 integer scale.
const (
	MinRating = 1
	MaxRating = 5
)

// RatingEligibility carries the facts needed to decide whether a rating may
// be created or updated. Callers resolve the IDs from storage; the decision
// itself is pure.
type RatingEligibility struct {
	TaskStatus      TaskStatus
	TaskCustomerID  uint // customer owning the rated task
	RaterCustomerID uint // customer attempting the rating
	RaterUserID     uint
	WorkerUserID    uint // user account behind the rated worker
	Existing        bool // a rating already exists for (customer, task_request)
}

// CheckRatingEligibility gates rating creation. Update paths pass
// Existing=false and enforce ownership via RaterCustomerID.
func CheckRatingEligibility(e RatingEligibility) error {
	if e.TaskStatus != TaskCompleted {
		return &ValidationError{
			Kind:   TaskNotCompleted,
			Detail: "only completed tasks can be rated",
		}
	}
	if e.RaterCustomerID != e.TaskCustomerID {
		return &PermissionError{Detail: "only the task's customer may rate it"}
	}
	if e.RaterUserID == e.WorkerUserID {
		return &ValidationError{
			Kind:   SelfRating,
			Detail: "you cannot rate your own work",
		}
	}
	if e.Existing {
		return &ValidationError{
			Kind:   DuplicateRating,
			Detail: "a rating for this task request already exists",
		}
	}
	return nil
}

// ValidateRatingValue enforces the 1-5 range.
func ValidateRatingValue(v int) error {
	if v < MinRating || v > MaxRating {
		return &ValidationError{
			Kind:   BadRatingValue,
			Detail: fmt.Sprintf("rating must be between %d and %d, got %d", MinRating, MaxRating, v),
		}
	}
	return nil
}
