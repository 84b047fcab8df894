package order

import "deliverysystem/internal/core/domain/model/kernel"

const (
	expressDefaultNote = "Express delivery requested"
	economyNote        = "Economy shipping - no rush"
)

// Director builds orders from presets. Every preset resets the builder
// first, so nothing leaks from one call into the next.
type Director struct {
	builder *Builder
}

// NewDirector wraps builder. A nil builder is replaced by a fresh one.
func NewDirector(builder *Builder) *Director {
	if builder == nil {
		builder = NewBuilder()
	}
	return &Director{builder: builder}
}

// BuildStandard creates a Normal priority order without notes.
func (d *Director) BuildStandard(customerID kernel.UUID, items []*Item) (*Order, error) {
	return d.builder.Reset().
		WithCustomer(customerID).
		WithPriority(Normal).
		AddItems(items...).
		Build()
}

// BuildExpress creates an Express order. An empty notes argument falls back
// to "Express delivery requested".
func (d *Director) BuildExpress(customerID kernel.UUID, items []*Item, notes string) (*Order, error) {
	if notes == "" {
		notes = expressDefaultNote
	}
	return d.builder.Reset().
		WithCustomer(customerID).
		WithPriority(Express).
		WithDeliveryNotes(notes).
		AddItems(items...).
		Build()
}

// BuildEconomy creates an Economy order with the fixed economy note.
func (d *Director) BuildEconomy(customerID kernel.UUID, items []*Item) (*Order, error) {
	return d.builder.Reset().
		WithCustomer(customerID).
		WithPriority(Economy).
		WithDeliveryNotes(economyNote).
		AddItems(items...).
		Build()
}
