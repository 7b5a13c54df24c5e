package request

import (
	"fmt"

	"fixmate/internal/pkg/errs"
)

// Status represents the lifecycle state of a service request.
// It implements a state machine with defined transitions to ensure
// requests follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> InProgress ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──> Rejected
//
// Assigned is only entered through provider assignment, never through a
// plain status update. Completed and Rejected are terminal: re-applying a
// terminal status is rejected, transitions are one-shot edges.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a request is first created.
	// Requests in this status are waiting for a provider.
	Pending

	// Assigned indicates a provider has been bound to the request.
	Assigned

	// InProgress indicates the assigned provider has started the work.
	InProgress

	// Completed indicates the work finished successfully.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Rejected indicates the request was declined or abandoned.
	// This is a terminal state with no further transitions allowed.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Rejected:   "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Rejected:   "Rejected",
	}
}

// StatusFromString parses a status from its string representation.
// Used when interpreting status values supplied by callers.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Assigned, InProgress, Completed, Rejected.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are permitted from s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}

// ValidateAssign checks if the status allows provider assignment without
// performing the transition. Assignment is only permitted from Pending:
// a request that already carries a provider, or sits in a terminal state,
// cannot be assigned again.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewConflictError(
			fmt.Sprintf("request already assigned or in a terminal/active state: status is %s", s),
		)
	}
	return nil
}

// ValidateCanHaveProvider validates the consistency between request status
// and provider assignment.
//
// Business rules:
//   - Pending and Rejected requests must not have a provider assigned
//   - Assigned, InProgress, and Completed requests must have a provider assigned
func (s Status) ValidateCanHaveProvider(provider bool) error {
	if provider && s != Assigned && s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a provider", s),
		)
	}

	if !provider && (s == Assigned || s == InProgress || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no provider", s),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
//
// Returns a Conflict error for every other starting state.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Assigned -> InProgress
//
// A Pending request cannot start (no provider is bound yet) and terminal
// requests cannot be reopened.
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, errs.NewConflictError(
			fmt.Sprintf("invalid status transition: %s -> %s", s, InProgress),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Assigned -> Completed
//   - InProgress -> Completed
//
// A Pending request cannot be completed without assignment, and terminal
// states admit no further transitions.
func (s Status) Complete() (Status, error) {
	if s != Assigned && s != InProgress {
		return 0, errs.NewConflictError(
			fmt.Sprintf("invalid status transition: %s -> %s", s, Completed),
		)
	}

	return Completed, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending -> Rejected
//   - Assigned -> Rejected
//   - InProgress -> Rejected
//
// Terminal states admit no further transitions, including Rejected itself.
func (s Status) Reject() (Status, error) {
	if s.IsTerminal() || s == Unknown {
		return 0, errs.NewConflictError(
			fmt.Sprintf("invalid status transition: %s -> %s", s, Rejected),
		)
	}

	return Rejected, nil
}
