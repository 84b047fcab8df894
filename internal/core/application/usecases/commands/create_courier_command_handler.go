package commands

import (
	"context"

	"deliverysystem/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler handles the business logic for courier registration.
// The courier is built by the factory registered for its vehicle kind, so a
// new kind only needs a new factory in the provider.
//
// Example:
//
//	handler := NewCreateCourierCommandHandler(uowFactory, provider)
//	cmd, _ := NewCreateCourierCommand(kernel.NewUUID(), courier.Bike, courier.CreationParams{Name: "Ana", Phone: "1"})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("courier registration failed: %w", err)
//	}
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	factories  *courier.FactoryProvider
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
// A nil provider falls back to the Bike/Car/Drone defaults.
func NewCreateCourierCommandHandler(
	uowFactory CourierUoWFactory,
	factories *courier.FactoryProvider,
) CreateCourierCommandHandler {
	if factories == nil {
		factories = courier.NewDefaultFactoryProvider()
	}
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
		factories:  factories,
	}
}

// Handle processes the courier creation command.
// Creates a new courier entity and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	courierEntity, err := h.factories.Create(cmd.Kind(), cmd.CourierID(), cmd.Params())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
