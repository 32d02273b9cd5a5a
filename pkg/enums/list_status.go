package enums

import "fmt"

// ListStatus is the shopping list lifecycle state. The source UI also knows a
// transient error display state; it is never persisted and maps to an error
// return here.
type ListStatus string

const (
	ListStatusDraft      ListStatus = "draft"
	ListStatusValidated  ListStatus = "validated"
	ListStatusInProgress ListStatus = "in_progress"
	ListStatusCompleted  ListStatus = "completed"
)

var validListStatuses = []ListStatus{
	ListStatusDraft,
	ListStatusValidated,
	ListStatusInProgress,
	ListStatusCompleted,
}

// String implements fmt.Stringer.
func (l ListStatus) String() string {
	return string(l)
}

// IsValid reports whether the value is a known ListStatus.
func (l ListStatus) IsValid() bool {
	for _, candidate := range validListStatuses {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseListStatus converts the raw string to ListStatus.
func ParseListStatus(value string) (ListStatus, error) {
	for _, candidate := range validListStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid list status %q", value)
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (l ListStatus) CanTransitionTo(next ListStatus) bool {
	switch l {
	case ListStatusDraft:
		return next == ListStatusValidated
	case ListStatusValidated:
		return next == ListStatusInProgress
	case ListStatusInProgress:
		return next == ListStatusCompleted
	default:
		return false
	}
}
