package commands

import (
	"context"
	"errors"
	"log/slog"

	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/ports"
	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/keylock"
)

// ChangeDeliveryStatusCommandHandler applies one delivery transition.
//
// Delivered and Failed end the delivery and release its courier. The release
// is best effort: when the courier no longer exists it is skipped and
// logged, and the delivery outcome is still recorded.
type ChangeDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	locker     *keylock.Locker
	logger     *slog.Logger
}

func NewChangeDeliveryStatusCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	locker *keylock.Locker,
	logger *slog.Logger,
) ChangeDeliveryStatusCommandHandler {
	if locker == nil {
		locker = keylock.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return ChangeDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		locker:     locker,
		logger:     logger.With("component", "change_delivery_status"),
	}
}

// Handle loads the delivery, its order and the order's customer, applies the
// transition, persists, releases the courier when the delivery ended and
// notifies the customer. Delivered sends the completion notice; every other
// target sends a status change.
func (h ChangeDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	unlock := h.locker.Lock(d.CourierID().String())
	defer unlock()

	// Reload under the courier lock so concurrent updates are seen.
	if d, err = deliveryRepo.Get(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, d.OrderID())
	if err != nil {
		return err
	}

	c, err := uow.CustomerRepository().Get(ctx, o.CustomerID())
	if err != nil {
		return err
	}

	wasActive := d.IsActive()
	if err = d.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	// A delivery failed twice no longer holds its courier.
	if wasActive && !d.IsActive() {
		if err = h.releaseCourier(ctx, uow, d); err != nil {
			return err
		}
	}

	if d.Status() == delivery.Delivered {
		err = h.notifier.NotifyDeliveryCompleted(ctx, d, c)
	} else {
		err = h.notifier.NotifyDeliveryStatusChanged(ctx, d, c)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ChangeDeliveryStatusCommandHandler) releaseCourier(ctx context.Context, uow UoW, d *delivery.Delivery) error {
	courierRepo := uow.CourierRepository()

	c, err := courierRepo.Get(ctx, d.CourierID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "courier not found, release skipped",
			"delivery_id", d.ID().String(),
			"courier_id", d.CourierID().String(),
		)
		return nil
	}
	if err != nil {
		return err
	}

	c.SetAvailable()
	return courierRepo.Update(ctx, c)
}
