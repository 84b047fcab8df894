package commands

import (
	"context"

	"deliverysystem/internal/core/ports"
)

// CloneOrderCommandHandler deep-copies an order and stores the copy as a
// new order of the same customer. The customer is told about the new order
// the same way as for CreateOrder.
type CloneOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

func NewCloneOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CloneOrderCommandHandler {
	return CloneOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle copies the source order regardless of its status. The copy is
// Created, so it can be edited and confirmed again.
func (h CloneOrderCommandHandler) Handle(ctx context.Context, cmd CloneOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	source, err := orderRepo.Get(ctx, cmd.SourceOrderID())
	if err != nil {
		return err
	}

	c, err := uow.CustomerRepository().Get(ctx, source.CustomerID())
	if err != nil {
		return err
	}

	clone, err := source.DeepCopyWithID(cmd.CloneOrderID())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, clone); err != nil {
		return err
	}

	if err = h.notifier.NotifyOrderCreated(ctx, clone, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
