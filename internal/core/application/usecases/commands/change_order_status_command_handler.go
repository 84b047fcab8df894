package commands

import (
	"context"

	"deliverysystem/internal/core/ports"
	"deliverysystem/internal/pkg/keylock"
)

// ChangeOrderStatusCommandHandler applies one lifecycle transition.
// The steps are: load order, load its customer, transition, persist,
// notify, commit. Any failure leaves the stored order untouched.
// The steps run with the order id locked, so concurrent transitions of one
// order are applied one after the other.
//
// Example:
//
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Confirmed)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order or customer
//	case errors.Is(err, errs.ErrInvalidState):
//	    // transition not allowed from the current status
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	locker     *keylock.Locker
}

// NewChangeOrderStatusCommandHandler creates the handler. locker must be the
// one shared with courier assignment, which locks the same order ids.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	locker *keylock.Locker,
) ChangeOrderStatusCommandHandler {
	if locker == nil {
		locker = keylock.New()
	}
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		locker:     locker,
	}
}

func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locker.Lock(cmd.OrderID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	c, err := uow.CustomerRepository().Get(ctx, o.CustomerID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = h.notifier.NotifyOrderStatusChanged(ctx, o, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
