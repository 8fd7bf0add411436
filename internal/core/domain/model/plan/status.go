package plan

import (
	"fmt"

	"fuelroute/internal/pkg/errs"
)

// Status represents the lifecycle state of a plan.
// It implements a state machine with defined transitions to ensure
// plans follow the correct solving workflow.
//
// State transitions:
//
//	Queued ──┬──> Completed
//	         │
//	         └──> Failed
//
// Both Completed and Failed are final states.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Queued is the initial status when a plan is first created.
	// Plans in this status are waiting to be picked up by the solver.
	Queued

	// Completed indicates the plan has been solved successfully
	// and carries a result. This is a final state.
	Completed

	// Failed indicates the solver could not produce a route for the
	// plan, for example when no vehicle can carry the heaviest package.
	// This is a final state.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Queued:    "Queued",
		Completed: "Completed",
		Failed:    "Failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Queued:    "Queued",
		Completed: "Completed",
		Failed:    "Failed",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Queued, Completed, Failed.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Queued", "Completed", or "Failed" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString converts a string representation back into a Status.
// Used when reconstructing plans from persistence.
//
// Returns:
//   - the matching Status for "Queued", "Completed" or "Failed"
//   - an error for any other input
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Queued -> Completed (plan solved)
//
// Invalid transitions:
//   - Completed -> Completed (already completed)
//   - Failed -> Completed (final state)
//   - Unknown -> Completed (invalid initial state)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Plan.Complete() to enforce state transitions.
func (s Status) Complete() (Status, error) {
	if s != Queued {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Fail transitions the status to Failed.
//
// Valid transitions:
//   - Queued -> Failed (solving failed)
//
// Invalid transitions:
//   - Completed -> Failed (final state)
//   - Failed -> Failed (already failed)
//   - Unknown -> Failed (invalid initial state)
//
// Returns:
//   - (Failed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Plan.Fail() to enforce state transitions.
func (s Status) Fail() (Status, error) {
	if s != Queued {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}

	return Failed, nil
}
