package order

import (
	"fmt"

	"github.com/Ramos-Maykol/project/internal/pkg/errs"
)

// Status represents the lifecycle state of a production order.
// It implements a state machine with defined transitions to ensure
// orders follow the production workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed ──> Delivered
//
// Delivered is the terminal state. Only orders that reached it contribute to
// the duration model's training set.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed.
	// Pending orders occupy a slot in the production queue.
	Pending

	// InProgress indicates production has started.
	// The transition stamps the production start time.
	InProgress

	// Completed indicates production has finished.
	// The transition stamps the completion time.
	Completed

	// Delivered indicates the order reached the customer.
	// This is the terminal state; it makes the order eligible as a
	// training example and triggers a model retrain.
	Delivered
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Delivered:  "delivered",
	}
}

// getValidStatusStrings returns only valid Status values, to support validation
// and parsing of external input.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Delivered:  "delivered",
	}
}

// StatusFromString parses a wire representation ("pending", "in_progress",
// "completed", "delivered") into a Status. Returns an error for anything else.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, InProgress, Completed, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the order occupies a production-queue slot.
// Pending and InProgress orders are active; Completed and Delivered are not.
func (s Status) IsActive() bool {
	return s == Pending || s == InProgress
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress
//
// Returns (0, error) for any other current status.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to start production", s))
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Returns (0, error) for any other current status.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete production", s))
	}
	return Completed, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Completed -> Delivered
//
// Delivered is terminal: no transition leaves it.
// Returns (0, error) for any other current status.
func (s Status) Deliver() (Status, error) {
	if s != Completed {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s))
	}
	return Delivered, nil
}
