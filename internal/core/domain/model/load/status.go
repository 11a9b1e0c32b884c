package load

import (
	"fmt"
	"strings"

	"cargopro/internal/pkg/errs"
)

// Status represents the lifecycle state of a load.
//
// State transitions:
//
//	Posted ──> Booked      (a booking is created)
//	Booked ──> Posted      (the last active booking is deleted)
//	any    ──> Posted      (field update re-posts the load)
//	any    ──> Cancelled   (explicit soft delete; accepts no new bookings)
//
// Status is a value object that validates state transitions and provides the
// wire representation used for persistence and API responses.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Posted is the initial status of a freshly created load.
	// Loads in this status have no active bookings.
	Posted

	// Booked indicates at least one pending or accepted booking exists.
	Booked

	// Cancelled indicates the load was soft-deleted by its shipper.
	// Cancelled loads are retained in storage but accept no new bookings.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Posted:    "POSTED",
		Booked:    "BOOKED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Posted:    "POSTED",
		Booked:    "BOOKED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a load status.
// Parsing is case-insensitive and closed over the valid variants; any other
// input yields a validation error. It is called once at the API boundary,
// never re-parsed downstream.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid load status", s),
	)
}

// Validate checks if the Status value is one of the valid variants.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid load status", s),
		)
	}
	return nil
}

// String returns the wire name of the status ("POSTED", "BOOKED",
// "CANCELLED"), or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Book transitions the status to Booked.
//
// Booking is allowed from Posted and from Booked (a load with an active
// booking accepts further proposals). Cancelled loads reject the transition
// with ErrLoadCancelled.
func (s Status) Book() (Status, error) {
	if s == Cancelled {
		return 0, ErrLoadCancelled
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Booked, nil
}

// Repost transitions the status back to Posted.
//
// Used when the last active booking is removed and when a field update
// re-opens the load for bidding. Allowed from any valid status: the source
// system resets unconditionally, including from Booked and Cancelled.
func (s Status) Repost() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Posted, nil
}

// Cancel transitions the status to Cancelled.
//
// Allowed from any valid status; cancelling an already cancelled load is a
// no-op rather than an error.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}
