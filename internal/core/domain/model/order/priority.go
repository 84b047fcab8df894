package order

import (
	"fmt"
	"strings"

	"deliverysystem/internal/pkg/errs"
)

// Priority expresses how urgently the customer wants the order.
type Priority int

const (
	// UnknownPriority catches uninitialized Priority values.
	UnknownPriority Priority = iota
	Economy
	Normal
	Express
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		UnknownPriority: "Unknown",
		Economy:         "Economy",
		Normal:          "Normal",
		Express:         "Express",
	}
}

func (p Priority) String() string {
	if s, ok := getPriorityStrings()[p]; ok {
		return s
	}
	return "Unknown"
}

// Validate accepts Economy, Normal and Express.
func (p Priority) Validate() error {
	if p < Economy || p > Express {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// ParsePriority maps a case-insensitive priority name to a Priority.
func ParsePriority(s string) (Priority, error) {
	for p, name := range getPriorityStrings() {
		if p != UnknownPriority && strings.EqualFold(name, strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("unknown priority %q", s))
}
