package services

import (
	"errors"
	"fmt"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrCourierNotFound is returned when no courier in the candidate list qualifies.
var ErrCourierNotFound = errs.NewObjectNotFoundErrorWithCause("courier", "available",
	errors.New("no available courier can carry the requested weight"))

// OrderDispatcher holds the matching rules between an order and a courier.
// It has no state and never touches repositories; callers load the
// aggregates, call the checks in order, and persist the results.
//
// The checks map onto the assignment workflow:
//
//	ValidateDistance -> ValidateOrder -> ValidateCourier -> Dispatch
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// ValidateDistance rejects trips that are negative or longer than maxKm.
func (OrderDispatcher) ValidateDistance(distanceKm, maxKm decimal.Decimal) error {
	if distanceKm.IsNegative() {
		return errs.NewValueIsOutOfRangeError("distanceKm", distanceKm, 0, maxKm)
	}
	if distanceKm.GreaterThan(maxKm) {
		return errs.NewPolicyViolationError("max delivery distance",
			fmt.Sprintf("distance %skm exceeds max allowed delivery distance of %skm", distanceKm, maxKm))
	}
	return nil
}

// ValidateOrder requires a ReadyForDelivery order.
func (OrderDispatcher) ValidateOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.ReadyForDelivery {
		return errs.NewInvalidStateErrorWithReason("order", o.Status().String(),
			"order must be ReadyForDelivery to assign a courier")
	}
	return nil
}

// ValidateCourier requires an available courier able to carry the order's weight.
func (OrderDispatcher) ValidateCourier(o *order.Order, c *courier.Courier) error {
	if err := errors.Join(o.Validate(), c.Validate()); err != nil {
		return err
	}
	if !c.IsAvailable() {
		return errs.NewPolicyViolationError("courier availability",
			fmt.Sprintf("courier %s is not available", c.Name()))
	}
	if weight := o.TotalWeight(); !c.CanCarry(weight) {
		return errs.NewPolicyViolationError("courier capacity",
			fmt.Sprintf("order weight %skg exceeds courier capacity of %skg", weight, c.MaxWeightKg()))
	}
	return nil
}

// Dispatch re-runs the order and courier checks, then builds an Assigned
// delivery with the courier's estimate and reserves the courier.
// On error neither the courier nor the order is modified.
//
// Parameters:
//   - o: ReadyForDelivery order
//   - c: available courier with enough capacity
//   - distanceKm: trip length used for the estimate
//
// Returns:
//   - *delivery.Delivery: the new Assigned delivery
//   - error: InvalidState, PolicyViolation or validation errors
func (d OrderDispatcher) Dispatch(o *order.Order, c *courier.Courier, distanceKm decimal.Decimal) (*delivery.Delivery, error) {
	if err := d.ValidateOrder(o); err != nil {
		return nil, err
	}
	if err := d.ValidateCourier(o, c); err != nil {
		return nil, err
	}

	eta, err := c.CalculateDeliveryTime(distanceKm)
	if err != nil {
		return nil, err
	}

	dlv, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), c.ID(), distanceKm)
	if err != nil {
		return nil, err
	}
	if err = dlv.SetEstimatedDeliveryTime(eta); err != nil {
		return nil, err
	}
	if err = dlv.MarkAssigned(); err != nil {
		return nil, err
	}

	c.SetUnavailable()
	return dlv, nil
}

// FindAvailable returns the first courier that is available and can carry
// weightKg. The choice is first-match, not ranked.
func (OrderDispatcher) FindAvailable(couriers []*courier.Courier, weightKg decimal.Decimal) (*courier.Courier, error) {
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.IsAvailable() && c.CanCarry(weightKg) {
			return c, nil
		}
	}
	return nil, ErrCourierNotFound
}
