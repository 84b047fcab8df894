package delivery

import (
	"fmt"
	"strings"

	"deliverysystem/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──> Delivered
//	   │           │            │            │
//	   └───────────┴────────────┴────────────┴──> Failed
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	// Pending is the status right after creation.
	Pending
	// Assigned means the courier has been reserved for this delivery.
	Assigned
	// PickedUp means the courier has collected the order.
	PickedUp
	// InTransit means the courier is on the way to the customer.
	InTransit
	// Delivered is final and cannot be failed afterwards.
	Delivered
	// Failed is final.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Failed:    "Failed",
	}
}

// getForwardTransitions lists the single forward step of each status.
// Failed is handled separately since it is reachable from every non-Delivered status.
func getForwardTransitions() map[Status]Status {
	//nolint:exhaustive // final statuses have no forward step
	return map[Status]Status{
		Pending:   Assigned,
		Assigned:  PickedUp,
		PickedUp:  InTransit,
		InTransit: Delivered,
	}
}

// Validate checks if the Status value is one of the known statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the delivery still holds its courier.
func (s Status) IsActive() bool {
	return s == Pending || s == Assigned || s == PickedUp || s == InTransit
}

// TransitionTo returns target if the move is legal, or an InvalidStateError.
// Failed is reachable from every status but Delivered, Failed included.
func (s Status) TransitionTo(target Status) (Status, error) {
	if target == Failed && s != Delivered && s != Unknown {
		return Failed, nil
	}
	if next, ok := getForwardTransitions()[s]; ok && next == target {
		return target, nil
	}
	return s, errs.NewInvalidStateError("delivery", s.String(), target.String())
}

// ParseStatus maps a case-insensitive status name to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("unknown delivery status %q", s))
}
