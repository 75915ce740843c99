package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	// Not found errors
	ErrActionNotFound = errors.New("action not found")

	// Lifecycle errors. Approve and reject are legal only from PENDING;
	// the lifecycle is one-way, so re-approval is an error rather than a
	// re-entry (which would re-notify recipients).
	ErrActionNotPending = errors.New("action is not pending")

	// Validation errors
	ErrEmptyPrompt = errors.New("prompt is required")
)

// Context keys for error values
const (
	ActionIDKey = "action_id"
)
