package types

import "fmt"

// ActionStatus represents the lifecycle status of an action item
type ActionStatus string

const (
	ActionStatusPending  ActionStatus = "PENDING"
	ActionStatusApproved ActionStatus = "APPROVED"
	ActionStatusRejected ActionStatus = "REJECTED"

	// Declared for delivery-state reconciliation, but the lifecycle engine
	// never assigns them: approval outcome and delivery outcome are kept
	// decoupled.
	ActionStatusSent   ActionStatus = "SENT"
	ActionStatusFailed ActionStatus = "FAILED"
)

// AllActionStatuses returns all valid action statuses
func AllActionStatuses() []ActionStatus {
	return []ActionStatus{
		ActionStatusPending,
		ActionStatusApproved,
		ActionStatusRejected,
		ActionStatusSent,
		ActionStatusFailed,
	}
}

// IsValid checks if the action status is valid
func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPending,
		ActionStatusApproved,
		ActionStatusRejected,
		ActionStatusSent,
		ActionStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the action status
func (s ActionStatus) String() string {
	return string(s)
}

// ParseActionStatus parses a string into an ActionStatus
func ParseActionStatus(s string) (ActionStatus, error) {
	status := ActionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid action status: %s", s)
	}
	return status, nil
}
