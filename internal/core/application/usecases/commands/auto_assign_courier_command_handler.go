package commands

import (
	"context"
	"errors"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/core/domain/model/order"
	"deliverysystem/internal/core/domain/services"
	"deliverysystem/internal/core/ports"
	"deliverysystem/internal/pkg/errs"
	"deliverysystem/internal/pkg/keylock"

	"github.com/shopspring/decimal"
)

var (
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
	ErrNoOrderFound        = errors.New("no order found")
)

// AutoAssignCourierCommandHandler picks work for the scheduler: the oldest
// ReadyForDelivery order without an active delivery, and the first available
// courier that can carry it over the nominal distance. The assignment itself
// follows the same checks as AssignCourierCommandHandler.
//
// Example:
//
//	handler := NewAutoAssignCourierCommandHandler(uowFactory, notifier, locker, decimal.NewFromInt(5))
//	cmd := NewAutoAssignCourierCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoFreeCouriersFound):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Courier assigned successfully")
//	}
type AutoAssignCourierCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	locker     *keylock.Locker
	distanceKm decimal.Decimal
	dispatcher services.OrderDispatcher
}

// NewAutoAssignCourierCommandHandler creates a handler for automatic assignment.
// distanceKm is the trip length assumed for every automatic assignment.
func NewAutoAssignCourierCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	locker *keylock.Locker,
	distanceKm decimal.Decimal,
) AutoAssignCourierCommandHandler {
	if locker == nil {
		locker = keylock.New()
	}
	return AutoAssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		locker:     locker,
		distanceKm: distanceKm,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle assigns at most one order per call.
// Returns ErrNoOrderFound when nothing waits for a courier and
// ErrNoFreeCouriersFound when no courier qualifies for the chosen order.
func (h AutoAssignCourierCommandHandler) Handle(ctx context.Context, command AutoAssignCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	candidate, err := h.nextOrder(ctx, uow)
	if err != nil {
		return err
	}

	chosen, err := h.nextCourier(ctx, uow, candidate)
	if err != nil {
		return err
	}

	unlock := h.locker.LockAll(candidate.ID().String(), chosen.ID().String())
	defer unlock()

	// Reload under the locks; the candidates may have changed meanwhile.
	o, err := uow.OrderRepository().Get(ctx, candidate.ID())
	if err != nil {
		return err
	}
	if err = h.dispatcher.ValidateOrder(o); err != nil {
		return err
	}
	c, err := uow.CourierRepository().Get(ctx, chosen.ID())
	if err != nil {
		return err
	}

	if err = assign(ctx, uow, h.dispatcher, h.notifier, o, c, h.distanceKm); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h AutoAssignCourierCommandHandler) nextOrder(ctx context.Context, uow UoW) (*order.Order, error) {
	ready, err := uow.OrderRepository().GetByStatus(ctx, order.ReadyForDelivery)
	if err != nil {
		return nil, err
	}

	for _, o := range ready {
		err = ensureNoActiveDelivery(ctx, uow.DeliveryRepository(), o)
		switch {
		case err == nil:
			return o, nil
		case !errors.Is(err, errs.ErrInvalidState):
			return nil, err
		}
	}
	return nil, ErrNoOrderFound
}

func (h AutoAssignCourierCommandHandler) nextCourier(ctx context.Context, uow UoW, o *order.Order) (*courier.Courier, error) {
	couriers, err := uow.CourierRepository().GetAvailableForWeight(ctx, o.TotalWeight())
	if err != nil {
		return nil, err
	}

	inRange := make([]*courier.Courier, 0, len(couriers))
	for _, c := range couriers {
		if _, err = c.CalculateDeliveryTime(h.distanceKm); err == nil {
			inRange = append(inRange, c)
		}
	}

	c, err := h.dispatcher.FindAvailable(inRange, o.TotalWeight())
	if errors.Is(err, services.ErrCourierNotFound) {
		return nil, ErrNoFreeCouriersFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
