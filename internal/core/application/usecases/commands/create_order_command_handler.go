package commands

import (
	"context"
	"fmt"

	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/core/ports"
	"deliverysystem/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The customer must exist, and the number of lines may not exceed the
// configured MaxOrderItems. The customer is notified before the
// transaction commits; a failed notification aborts the order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, settingsStore, notifier)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, items, order.Normal, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	settings   ports.SettingsProvider
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	settings ports.SettingsProvider,
	notifier ports.Notifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		notifier:   notifier,
	}
}

// Handle builds the order (priority, then notes, then items), stores it and
// notifies the customer within one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if limit := h.settings.Snapshot().MaxOrderItems; len(cmd.Items()) > limit {
		return errs.NewPolicyViolationError("max order items",
			fmt.Sprintf("order has %d items, at most %d are allowed", len(cmd.Items()), limit))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	builder := order.NewBuilder().
		WithID(cmd.OrderID()).
		WithCustomer(c.ID()).
		WithPriority(cmd.Priority()).
		AddItems(cmd.Items()...)
	if cmd.DeliveryNotes() != "" {
		builder.WithDeliveryNotes(cmd.DeliveryNotes())
	}

	o, err := builder.Build()
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = h.notifier.NotifyOrderCreated(ctx, o, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
