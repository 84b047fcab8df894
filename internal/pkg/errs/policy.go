package errs

import (
	"errors"
	"fmt"
)

// ErrPolicyViolation is the sentinel for business-rule rejections that are not
// a plain state mismatch.
var ErrPolicyViolation = errors.New("policy violation")

// PolicyViolationError names the violated rule and explains the rejection.
type PolicyViolationError struct {
	Rule   string
	Reason string
}

// NewPolicyViolationError creates a PolicyViolationError.
func NewPolicyViolationError(rule, reason string) *PolicyViolationError {
	return &PolicyViolationError{Rule: rule, Reason: reason}
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrPolicyViolation, e.Rule, e.Reason)
}

func (e *PolicyViolationError) Unwrap() error {
	return ErrPolicyViolation
}
