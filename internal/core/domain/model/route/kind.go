package route

import (
	"fmt"

	"fuelroute/internal/pkg/errs"
)

// Kind tags an event with the action performed at its coordinate.
//
// Start and End are the synthetic depot sentinels framing every route;
// Pickup and Drop are the per-package actions. Only Pickup and Drop events
// carry a package, which the Event constructors enforce.
type Kind int

const (
	// Unknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	Unknown Kind = iota

	// Start marks the synthetic route origin at the depot.
	Start

	// End marks the synthetic route terminus at the depot.
	End

	// Pickup marks the collection of a package.
	Pickup

	// Drop marks the delivery of a package.
	Drop
)

// getKindLabels returns a map of Kind values to their action labels.
// The labels are the wire representation used in planner output.
func getKindLabels() map[Kind]string {
	return map[Kind]string{
		Start:  "start",
		End:    "end",
		Pickup: "pick",
		Drop:   "drop",
	}
}

// Validate checks if the Kind value is valid.
// Valid kinds are Start, End, Pickup, and Drop; Unknown and any other
// values are invalid.
func (k Kind) Validate() error {
	if _, ok := getKindLabels()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid event kind", k))
	}
	return nil
}

// String returns the action label of the kind: "start", "end", "pick", or
// "drop". This method implements the fmt.Stringer interface and is safe to
// call on any Kind value, including invalid ones.
func (k Kind) String() string {
	if label, ok := getKindLabels()[k]; ok {
		return label
	}
	return "unknown"
}

// KindFromLabel parses an action label back into a Kind.
// Used when reconstructing routes from persistence.
func KindFromLabel(label string) (Kind, error) {
	for kind, l := range getKindLabels() {
		if l == label {
			return kind, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("kind label",
		fmt.Errorf("%q is not a valid event kind label", label))
}
