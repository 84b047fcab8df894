package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer's request.
//
// Business rules:
//   - Order must have a valid UUID and a valid customer id
//   - Items and priority may change only while the order is Created
//   - Status moves only along the transitions of Status.TransitionTo
//   - Totals are always computed from the current items
//
// Example usage:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID)
//	if err != nil {
//	    return err
//	}
//	item, _ := order.NewItem("Pizza", 2, decimal.NewFromInt(120), decimal.RequireFromString("0.8"))
//	_ = o.AddItem(item)
//	_ = o.ChangeStatus(order.Confirmed)
type Order struct {
	// id uniquely identifies the order
	id kernel.UUID
	// customerID references the customer who placed the order
	customerID kernel.UUID
	// items keeps insertion order
	items []*Item
	// status is the current lifecycle state
	status Status
	// priority defaults to Normal
	priority Priority
	// deliveryNotes is empty when the customer left none
	deliveryNotes string
	createdAt     time.Time
	// updatedAt is nil until the first mutation
	updatedAt *time.Time
	guard     guard.ConstructorGuard
}

// NewOrder creates an empty Created order with Normal priority.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Customer placing the order (must be valid UUID)
//
// Returns:
//   - *Order: A new order ready to receive items
//   - error: Joined validation errors if any identifier is invalid
func NewOrder(id kernel.UUID, customerID kernel.UUID) (*Order, error) {
	o := &Order{
		status:    Created,
		priority:  Normal,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage without
// replaying lifecycle rules: items are attached regardless of status.
//
// Returns:
//   - *Order: Restored order aggregate
//   - error: Validation error if any field is invalid
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []*Item,
	status Status,
	priority Priority,
	deliveryNotes string,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Order, error) {
	o := &Order{
		deliveryNotes: deliveryNotes,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	if updatedAt != nil {
		u := *updatedAt
		o.updatedAt = &u
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		priority.Validate(),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	o.priority = priority

	return o, nil
}

// Validate checks that the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the order lines in insertion order. The slice is a copy; the
// items themselves are shared and immutable.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Priority() Priority {
	return o.priority
}

// DeliveryNotes returns the customer's notes, empty when none were given.
func (o *Order) DeliveryNotes() string {
	return o.deliveryNotes
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns nil until the order is mutated for the first time.
func (o *Order) UpdatedAt() *time.Time {
	if o.updatedAt == nil {
		return nil
	}
	u := *o.updatedAt
	return &u
}

// AddItem appends a line. Only allowed while the order is Created.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item", err)
	}
	if err := o.requireCreated("items can only be added while the order is Created"); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.touch()
	return nil
}

// RemoveItem removes the given line, matched by identity. Only allowed while
// the order is Created; an item that is not part of the order is reported
// as not found.
func (o *Order) RemoveItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item", err)
	}
	if err := o.requireCreated("items can only be removed while the order is Created"); err != nil {
		return err
	}

	idx := slices.Index(o.items, item)
	if idx < 0 {
		return errs.NewObjectNotFoundError("item", item.ProductName())
	}

	o.items = slices.Delete(o.items, idx, idx+1)
	o.touch()
	return nil
}

// SetPriority changes the priority. Only allowed while the order is Created.
func (o *Order) SetPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	if err := o.requireCreated("priority can only change while the order is Created"); err != nil {
		return err
	}

	o.priority = priority
	o.touch()
	return nil
}

// SetDeliveryNotes replaces the notes; an empty string clears them.
func (o *Order) SetDeliveryNotes(notes string) {
	o.deliveryNotes = notes
	o.touch()
}

// ChangeStatus moves the order to target and stamps the update time.
// An illegal transition returns an InvalidStateError and leaves the order unchanged.
//
// Example:
//
//	if err := o.ChangeStatus(order.Confirmed); err != nil {
//	    // errors.Is(err, errs.ErrInvalidState)
//	}
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	o.touch()
	return nil
}

// TotalPrice sums TotalPrice over the current items.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// TotalWeight sums TotalWeight over the current items.
func (o *Order) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.TotalWeight())
	}
	return total
}

// Clone returns a shallow copy: new id, status Created, same customer,
// priority and notes, and the very same item pointers.
func (o *Order) Clone() *Order {
	return o.copyWith(kernel.NewUUID(), slices.Clone(o.items))
}

// DeepCopy is like Clone but every item is rebuilt, so the copy never
// shares an item with the original.
func (o *Order) DeepCopy() *Order {
	return o.copyWith(kernel.NewUUID(), o.copyItems())
}

// DeepCopyWithID is DeepCopy with a caller supplied id.
func (o *Order) DeepCopyWithID(id kernel.UUID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return o.copyWith(id, o.copyItems()), nil
}

func (o *Order) String() string {
	return fmt.Sprintf("Order %s: %d items, total %s, priority %s, status %s",
		o.id, len(o.items), o.TotalPrice().StringFixed(2), o.priority, o.status)
}

func (o *Order) copyItems() []*Item {
	items := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, item.Copy())
	}
	return items
}

func (o *Order) copyWith(id kernel.UUID, items []*Item) *Order {
	return &Order{
		id:            id,
		customerID:    o.customerID,
		items:         items,
		status:        Created,
		priority:      o.priority,
		deliveryNotes: o.deliveryNotes,
		createdAt:     time.Now().UTC(),
		guard:         guard.NewConstructorGuard(),
	}
}

func (o *Order) requireCreated(reason string) error {
	if o.status != Created {
		return errs.NewInvalidStateErrorWithReason("order", o.status.String(), reason)
	}
	return nil
}

func (o *Order) touch() {
	now := time.Now().UTC()
	o.updatedAt = &now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("item", err)
		}
	}
	o.items = slices.Clone(items)
	return nil
}
