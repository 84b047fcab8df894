package commands

import (
	"errors"
	"fmt"

	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemParams is the raw input for one order line.
type OrderItemParams struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	WeightKg    decimal.Decimal
}

// CreateOrderCommand represents a request to place an order for an existing customer.
// Items are validated when the command is built; the item count limit and
// the customer lookup are checked by the handler.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, []OrderItemParams{
//	    {ProductName: "Pizza", Quantity: 2, UnitPrice: decimal.NewFromInt(120), WeightKg: decimal.NewFromFloat(0.8)},
//	}, order.Express, "ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, settings, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []*order.Item
	priority   order.Priority
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// UnknownPriority means Normal; empty notes mean no notes.
// Returns every id and item validation failure joined together.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	items []OrderItemParams,
	priority order.Priority,
	notes string,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setItems(items),
		command.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the validated order lines.
func (c CreateOrderCommand) Items() []*order.Item {
	return c.items
}

func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

func (c CreateOrderCommand) DeliveryNotes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(params []OrderItemParams) error {
	if len(params) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]*order.Item, 0, len(params))
	var itemErrs []error
	for i, p := range params {
		item, err := order.NewItem(p.ProductName, p.Quantity, p.UnitPrice, p.WeightKg)
		if err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if priority == order.UnknownPriority {
		priority = order.Normal
	}
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
