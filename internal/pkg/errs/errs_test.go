package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"deliverysystem/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("courier", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: courier, ID is: 42 (cause: record not found)",
			err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("customer", "abc")

	assert.Equal(t, "object already exists: customer abc", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("email", errors.New("missing @"))

		assert.Equal(t, "value is invalid: email (cause: missing @)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, "unbounded")

		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, "unbounded", err.Max)
		assert.Equal(t,
			"value is out of range: 0 is quantity, min value is 1, max value is unbounded",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("weight", -5, 0, 100, errors.New("negative"))

		assert.Equal(t,
			"value is out of range: -5 is weight, min value is 0, max value is 100 (cause: negative)",
			err.Error())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("name", errors.New("blank"))

		assert.Equal(t, "value is required: name (cause: blank)", err.Error())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("transition", func(t *testing.T) {
		err := errs.NewInvalidStateError("order", "Created", "Delivered")

		assert.Equal(t, "invalid state: order cannot transition from Created to Delivered", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("precondition with current state", func(t *testing.T) {
		err := errs.NewInvalidStateErrorWithReason("order", "Confirmed", "items can only change while Created")

		assert.Equal(t, "invalid state: order is Confirmed: items can only change while Created", err.Error())
	})

	t.Run("precondition without current state", func(t *testing.T) {
		err := errs.NewInvalidStateErrorWithReason("order builder", "", "customer id is not set")

		assert.Equal(t, "invalid state: order builder: customer id is not set", err.Error())
	})
}

func TestPolicyViolationError(t *testing.T) {
	err := errs.NewPolicyViolationError("courier availability", "courier Ion is not available")

	assert.Equal(t, "policy violation: courier availability: courier Ion is not available", err.Error())
	require.ErrorIs(t, err, errs.ErrPolicyViolation)
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
	assert.Equal(t, "policy violation", errs.ErrPolicyViolation.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	wrapped := fmt.Errorf("assign courier: %w", errs.NewObjectNotFoundError("order", "1"))

	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "order", notFound.ParamName)
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "required", err: errs.NewValueIsRequiredError("a"), want: true},
		{name: "invalid", err: errs.NewValueIsInvalidError("a"), want: true},
		{name: "out of range", err: errs.NewValueIsOutOfRangeError("a", 1, 2, 3), want: true},
		{name: "joined", err: errors.Join(errs.NewValueIsRequiredError("a"), errs.NewValueIsInvalidError("b")), want: true},
		{name: "not found", err: errs.NewObjectNotFoundError("a", 1), want: false},
		{name: "state", err: errs.NewInvalidStateError("a", "b", "c"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.IsValidation(tt.err))
		})
	}
}
