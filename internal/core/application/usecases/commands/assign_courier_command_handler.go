package commands

import (
	"context"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/core/domain/services"
	"deliverysystem/internal/core/ports"
	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/keylock"

	"github.com/shopspring/decimal"
)

// AssignCourierCommandHandler matches a ReadyForDelivery order with an
// available courier that can carry it, creates the Assigned delivery and
// reserves the courier.
//
// The check-then-reserve sequence runs with the order id and the courier id
// locked, in that order. Two concurrent assignments of the same courier (or
// of the same order) are therefore serialized, and the second one sees the
// courier as unavailable.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrPolicyViolation):
//	    // too far, courier busy or too heavy
//	case errors.Is(err, errs.ErrInvalidState):
//	    // order not ReadyForDelivery or already has an active delivery
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order, courier or customer
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	settings   ports.SettingsProvider
	notifier   ports.Notifier
	locker     *keylock.Locker
	dispatcher services.OrderDispatcher
}

// NewAssignCourierCommandHandler creates a handler for courier assignment operations.
// locker must be shared with every other handler that reserves or releases couriers.
func NewAssignCourierCommandHandler(
	uowFactory UoWFactory,
	settings ports.SettingsProvider,
	notifier ports.Notifier,
	locker *keylock.Locker,
) AssignCourierCommandHandler {
	if locker == nil {
		locker = keylock.New()
	}
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		settings:   settings,
		notifier:   notifier,
		locker:     locker,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle processes the assignment. Nothing is written unless every check passes.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.dispatcher.ValidateDistance(
		command.DistanceKm(),
		h.settings.Snapshot().MaxDeliveryDistanceKm,
	); err != nil {
		return err
	}

	unlock := h.locker.LockAll(command.OrderID().String(), command.CourierID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if err = h.dispatcher.ValidateOrder(o); err != nil {
		return err
	}

	c, err := uow.CourierRepository().Get(ctx, command.CourierID())
	if err != nil {
		return err
	}

	if err = assign(ctx, uow, h.dispatcher, h.notifier, o, c, command.DistanceKm()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// assign runs the checks and writes shared by manual and automatic
// assignment. The caller owns the transaction and the locks.
func assign(
	ctx context.Context,
	uow UoW,
	dispatcher services.OrderDispatcher,
	notifier ports.Notifier,
	o *order.Order,
	c *courier.Courier,
	distanceKm decimal.Decimal,
) error {
	if err := dispatcher.ValidateOrder(o); err != nil {
		return err
	}

	if err := ensureNoActiveDelivery(ctx, uow.DeliveryRepository(), o); err != nil {
		return err
	}

	if err := dispatcher.ValidateCourier(o, c); err != nil {
		return err
	}

	cust, err := uow.CustomerRepository().Get(ctx, o.CustomerID())
	if err != nil {
		return err
	}

	d, err := dispatcher.Dispatch(o, c, distanceKm)
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Update(ctx, c); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return err
	}

	return notifier.NotifyDeliveryAssigned(ctx, d, cust, c)
}

func ensureNoActiveDelivery(ctx context.Context, repo ports.DeliveryRepository, o *order.Order) error {
	existing, err := repo.GetByOrder(ctx, o.ID())
	if err != nil {
		return err
	}
	for _, d := range existing {
		if d.IsActive() {
			return activeDeliveryError(d)
		}
	}
	return nil
}

func activeDeliveryError(d *delivery.Delivery) error {
	return errs.NewInvalidStateErrorWithReason("order", "",
		"order already has active delivery "+d.ID().String()+" in status "+d.Status().String())
}
