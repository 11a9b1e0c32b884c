package booking

import (
	"fmt"
	"strings"

	"cargopro/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking.
//
// State transitions:
//
//	Pending ──> Accepted
//	Pending ──> Rejected
//
// A decision never feeds back into the owning load's status; only booking
// deletion does.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a freshly submitted booking.
	Pending

	// Accepted indicates the shipper accepted the proposal.
	Accepted

	// Rejected indicates the shipper rejected the proposal.
	// Rejected bookings are not active but remain in storage until deleted.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Pending:  "PENDING",
		Accepted: "ACCEPTED",
		Rejected: "REJECTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "PENDING",
		Accepted: "ACCEPTED",
		Rejected: "REJECTED",
	}
}

// StatusFromString parses the wire representation of a booking status.
// Parsing is case-insensitive and closed over the valid variants; any other
// input yields a validation error. Called once at the API boundary.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid booking status", s),
	)
}

// Validate checks if the Status value is one of the valid variants.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid booking status", s),
		)
	}
	return nil
}

// String returns the wire name of the status ("PENDING", "ACCEPTED",
// "REJECTED"), or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether a booking in this status keeps its load booked.
// Pending and accepted bookings are active; rejected ones are not.
func (s Status) IsActive() bool {
	return s == Pending || s == Accepted
}

// Decide validates a status as the outcome of an explicit decision.
// Only Accepted and Rejected are permissible outcomes.
func (s Status) Decide() error {
	if s != Accepted && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid booking decision", s.String()),
		)
	}
	return nil
}
