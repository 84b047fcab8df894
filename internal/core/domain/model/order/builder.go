package order

import (
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/errs"
)

// Builder assembles an Order step by step. Every setter returns the same
// builder so calls can be chained; problems are reported by Build.
//
// A Builder is not safe for concurrent use.
//
// Example:
//
//	o, err := order.NewBuilder().
//	    WithCustomer(customerID).
//	    AddItem(pizza).
//	    WithPriority(order.Express).
//	    Build()
type Builder struct {
	id         kernel.UUID
	customerID kernel.UUID
	items      []*Item
	priority   Priority
	notes      string
	hasNotes   bool
}

// NewBuilder returns an empty builder with Normal priority.
func NewBuilder() *Builder {
	return &Builder{priority: Normal}
}

// WithID fixes the id of the built order. Without it Build generates one.
func (b *Builder) WithID(id kernel.UUID) *Builder {
	b.id = id
	return b
}

// WithCustomer sets the customer the order belongs to.
func (b *Builder) WithCustomer(customerID kernel.UUID) *Builder {
	b.customerID = customerID
	return b
}

// AddItem appends a line.
func (b *Builder) AddItem(item *Item) *Builder {
	b.items = append(b.items, item)
	return b
}

// AddItems appends several lines in order.
func (b *Builder) AddItems(items ...*Item) *Builder {
	b.items = append(b.items, items...)
	return b
}

// WithPriority overrides the default Normal priority.
func (b *Builder) WithPriority(priority Priority) *Builder {
	b.priority = priority
	return b
}

// WithDeliveryNotes sets the delivery notes.
func (b *Builder) WithDeliveryNotes(notes string) *Builder {
	b.notes = notes
	b.hasNotes = true
	return b
}

// Reset clears everything accumulated so far.
func (b *Builder) Reset() *Builder {
	*b = Builder{priority: Normal}
	return b
}

// Build creates the order, applying priority, then notes, then items.
// It fails with an InvalidStateError when no customer is set or no item
// was added. The builder keeps its state; call Reset to reuse it.
func (b *Builder) Build() (*Order, error) {
	if b.customerID.IsZero() {
		return nil, errs.NewInvalidStateErrorWithReason("order builder", "", "customer id must be set before building an order")
	}
	if len(b.items) == 0 {
		return nil, errs.NewInvalidStateErrorWithReason("order builder", "", "order must have at least one item")
	}

	id := b.id
	if id.IsZero() {
		id = kernel.NewUUID()
	}

	o, err := NewOrder(id, b.customerID)
	if err != nil {
		return nil, err
	}
	if err := o.SetPriority(b.priority); err != nil {
		return nil, err
	}
	if b.hasNotes {
		o.SetDeliveryNotes(b.notes)
	}
	for _, item := range b.items {
		if err := o.AddItem(item); err != nil {
			return nil, err
		}
	}

	return o, nil
}
