package order

import (
	"fmt"
	"strings"

	"deliverysystem/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Created ──────────> Confirmed ──> Processing ──> ReadyForDelivery ──> InDelivery ──> Delivered
//	   │                    │              │
//	   └────────────────────┴──────────────┴──> Cancelled
//
// Delivered and Cancelled are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status. Items and priority may change only here.
	Created

	// Confirmed means the customer confirmed the order.
	Confirmed

	// Processing means the order is being prepared.
	Processing

	// ReadyForDelivery is the only status in which a courier can be assigned.
	ReadyForDelivery

	// InDelivery means a courier is carrying the order.
	InDelivery

	// Delivered is final.
	Delivered

	// Cancelled is final.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Created:          "Created",
		Confirmed:        "Confirmed",
		Processing:       "Processing",
		ReadyForDelivery: "ReadyForDelivery",
		InDelivery:       "InDelivery",
		Delivered:        "Delivered",
		Cancelled:        "Cancelled",
	}
}

// getTransitions lists the legal targets for every non-final status.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // final and unknown statuses have no targets
	return map[Status][]Status{
		Created:          {Confirmed, Cancelled},
		Confirmed:        {Processing, Cancelled},
		Processing:       {ReadyForDelivery, Cancelled},
		ReadyForDelivery: {InDelivery},
		InDelivery:       {Delivered},
	}
}

// Validate checks if the Status value is one of the known statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether target is a legal next status.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the move is legal, or an InvalidStateError
// naming both statuses.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return s, errs.NewInvalidStateError("order", s.String(), target.String())
	}
	return target, nil
}

// ParseStatus maps a case-insensitive status name to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("unknown order status %q", s))
}
