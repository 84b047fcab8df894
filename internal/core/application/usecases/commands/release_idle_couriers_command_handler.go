package commands

import (
	"context"
	"log/slog"

	"deliverysystem/internal/core/domain/model/courier"
	"deliverysystem/internal/pkg/keylock"
)

// ReleaseIdleCouriersCommandHandler repairs courier reservations. Every
// courier is re-checked under its lock before it is released, so a courier
// reserved by a concurrent assignment is left alone.
type ReleaseIdleCouriersCommandHandler struct {
	uowFactory UoWFactory
	locker     *keylock.Locker
	logger     *slog.Logger
}

func NewReleaseIdleCouriersCommandHandler(
	uowFactory UoWFactory,
	locker *keylock.Locker,
	logger *slog.Logger,
) ReleaseIdleCouriersCommandHandler {
	if locker == nil {
		locker = keylock.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return ReleaseIdleCouriersCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		logger:     logger.With("component", "release_idle_couriers"),
	}
}

func (h ReleaseIdleCouriersCommandHandler) Handle(ctx context.Context, command ReleaseIdleCouriersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	// Courier locks are held until the staged releases are committed.
	var unlocks []func()
	defer func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	couriers, err := uow.CourierRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	released := 0
	for _, c := range couriers {
		if c.IsAvailable() {
			continue
		}

		unlocks = append(unlocks, h.locker.Lock(c.ID().String()))
		ok, err := h.release(ctx, uow, c)
		if err != nil {
			return err
		}
		if ok {
			released++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if released > 0 {
		h.logger.InfoContext(ctx, "idle couriers released", "count", released)
	}
	return nil
}

// release frees candidate unless it holds an active delivery. The caller
// holds the courier lock.
func (h ReleaseIdleCouriersCommandHandler) release(ctx context.Context, uow UoW, candidate *courier.Courier) (bool, error) {
	c, err := uow.CourierRepository().Get(ctx, candidate.ID())
	if err != nil {
		return false, err
	}
	if c.IsAvailable() {
		return false, nil
	}

	deliveries, err := uow.DeliveryRepository().GetByCourier(ctx, c.ID())
	if err != nil {
		return false, err
	}
	for _, d := range deliveries {
		if d.IsActive() {
			return false, nil
		}
	}

	c.SetAvailable()
	if err = uow.CourierRepository().Update(ctx, c); err != nil {
		return false, err
	}
	return true, nil
}
