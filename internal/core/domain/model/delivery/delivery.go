package delivery

import (
	"errors"
	"fmt"
	"time"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery records one courier carrying one order.
//
// Business rules:
//   - order and courier ids are required, distance is not negative
//   - a new delivery is Pending and stamped with its assignment time
//   - the estimated duration is set at most once, before pickup
//   - PickedUpAt and DeliveredAt are stamped by the matching transitions
//   - Failed is reachable from every status except Delivered
//
// Example usage:
//
//	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, courierID, decimal.NewFromInt(10))
//	if err != nil {
//	    return err
//	}
//	_ = d.SetEstimatedDeliveryTime(30 * time.Minute)
//	_ = d.MarkAssigned()
type Delivery struct {
	id         kernel.UUID
	orderID    kernel.UUID
	courierID  kernel.UUID
	distanceKm decimal.Decimal
	status     Status
	assignedAt time.Time
	// pickedUpAt, deliveredAt and estimatedTime stay nil until set
	pickedUpAt    *time.Time
	deliveredAt   *time.Time
	estimatedTime *time.Duration
	guard         guard.ConstructorGuard
}

// NewDelivery creates a Pending delivery assigned now.
//
// Parameters:
//   - id: Unique identifier for the delivery
//   - orderID: The order being delivered (must be valid UUID)
//   - courierID: The courier carrying it (must be valid UUID)
//   - distanceKm: Trip length, zero or more
//
// Returns:
//   - *Delivery: A Pending delivery
//   - error: Joined validation errors
func NewDelivery(id, orderID, courierID kernel.UUID, distanceKm decimal.Decimal) (*Delivery, error) {
	d := &Delivery{
		status:     Pending,
		assignedAt: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setCourierID(courierID),
		d.setDistance(distanceKm),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
func RestoreDelivery(
	id, orderID, courierID kernel.UUID,
	distanceKm decimal.Decimal,
	status Status,
	assignedAt time.Time,
	pickedUpAt, deliveredAt *time.Time,
	estimatedTime *time.Duration,
) (*Delivery, error) {
	d := &Delivery{
		assignedAt:    assignedAt,
		pickedUpAt:    copyTime(pickedUpAt),
		deliveredAt:   copyTime(deliveredAt),
		estimatedTime: copyDuration(estimatedTime),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setCourierID(courierID),
		d.setDistance(distanceKm),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	d.status = status

	return d, nil
}

// Validate checks that the delivery was built by a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) CourierID() kernel.UUID {
	return d.courierID
}

func (d *Delivery) DistanceKm() decimal.Decimal {
	return d.distanceKm
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) AssignedAt() time.Time {
	return d.assignedAt
}

func (d *Delivery) PickedUpAt() *time.Time {
	return copyTime(d.pickedUpAt)
}

func (d *Delivery) DeliveredAt() *time.Time {
	return copyTime(d.deliveredAt)
}

// EstimatedDeliveryTime returns nil until an estimate was set.
func (d *Delivery) EstimatedDeliveryTime() *time.Duration {
	return copyDuration(d.estimatedTime)
}

// IsActive reports whether the delivery is neither Delivered nor Failed.
func (d *Delivery) IsActive() bool {
	return d.status.IsActive()
}

// SetEstimatedDeliveryTime stores the travel estimate. It can be set once,
// while the delivery is Pending or Assigned.
func (d *Delivery) SetEstimatedDeliveryTime(estimate time.Duration) error {
	if estimate < 0 {
		return errs.NewValueIsOutOfRangeError("estimatedDeliveryTime", estimate, 0, "unbounded")
	}
	if d.status != Pending && d.status != Assigned {
		return errs.NewInvalidStateErrorWithReason("delivery", d.status.String(),
			"estimated delivery time can only be set before pickup")
	}
	if d.estimatedTime != nil {
		return errs.NewInvalidStateErrorWithReason("delivery", d.status.String(),
			"estimated delivery time is already set")
	}
	d.estimatedTime = &estimate
	return nil
}

// MarkAssigned moves Pending to Assigned.
func (d *Delivery) MarkAssigned() error {
	return d.transition(Assigned)
}

// MarkPickedUp moves Assigned to PickedUp and stamps PickedUpAt.
func (d *Delivery) MarkPickedUp() error {
	if err := d.transition(PickedUp); err != nil {
		return err
	}
	now := time.Now().UTC()
	d.pickedUpAt = &now
	return nil
}

// MarkInTransit moves PickedUp to InTransit.
func (d *Delivery) MarkInTransit() error {
	return d.transition(InTransit)
}

// MarkDelivered moves InTransit to Delivered and stamps DeliveredAt.
func (d *Delivery) MarkDelivered() error {
	if err := d.transition(Delivered); err != nil {
		return err
	}
	now := time.Now().UTC()
	d.deliveredAt = &now
	return nil
}

// MarkFailed ends the delivery unsuccessfully. A Delivered delivery cannot
// fail; failing a Failed one again is a no-op.
func (d *Delivery) MarkFailed() error {
	return d.transition(Failed)
}

// ChangeStatus dispatches to the Mark* method that reaches target.
func (d *Delivery) ChangeStatus(target Status) error {
	switch target {
	case Assigned:
		return d.MarkAssigned()
	case PickedUp:
		return d.MarkPickedUp()
	case InTransit:
		return d.MarkInTransit()
	case Delivered:
		return d.MarkDelivered()
	case Failed:
		return d.MarkFailed()
	default:
		return errs.NewInvalidStateError("delivery", d.status.String(), target.String())
	}
}

func (d *Delivery) String() string {
	return fmt.Sprintf("Delivery %s: order %s, courier %s, status %s", d.id, d.orderID, d.courierID, d.status)
}

func (d *Delivery) transition(target Status) error {
	next, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}
	d.status = next
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}
	d.courierID = courierID
	return nil
}

func (d *Delivery) setDistance(distanceKm decimal.Decimal) error {
	if distanceKm.IsNegative() {
		return errs.NewValueIsOutOfRangeError("distanceKm", distanceKm, 0, "unbounded")
	}
	d.distanceKm = distanceKm
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func copyDuration(d *time.Duration) *time.Duration {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
