package queries

import (
	"context"
	"errors"

	"deliverysystem/internal/core/domain/model/delivery"
	"deliverysystem/internal/core/domain/model/kernel"
	"deliverysystem/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via one of the NewGet*DeliveriesQuery constructors",
)

type deliveryScope int

const (
	allDeliveries deliveryScope = iota
	activeDeliveries
	orderDeliveries
	courierDeliveries
)

// GetDeliveriesQuery lists deliveries: all, active only, of one order or of
// one courier.
type GetDeliveriesQuery struct {
	scope deliveryScope
	id    kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAllDeliveriesQuery() GetDeliveriesQuery {
	return GetDeliveriesQuery{scope: allDeliveries, guard: guard.NewConstructorGuard()}
}

func NewGetActiveDeliveriesQuery() GetDeliveriesQuery {
	return GetDeliveriesQuery{scope: activeDeliveries, guard: guard.NewConstructorGuard()}
}

func NewGetOrderDeliveriesQuery(orderID kernel.UUID) (GetDeliveriesQuery, error) {
	if err := validateID("orderID", orderID); err != nil {
		return GetDeliveriesQuery{}, err
	}
	return GetDeliveriesQuery{scope: orderDeliveries, id: orderID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetCourierDeliveriesQuery(courierID kernel.UUID) (GetDeliveriesQuery, error) {
	if err := validateID("courierID", courierID); err != nil {
		return GetDeliveriesQuery{}, err
	}
	return GetDeliveriesQuery{scope: courierDeliveries, id: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

type GetDeliveriesQueryHandler struct {
	repos RepositoriesFactory
}

func NewGetDeliveriesQueryHandler(repos RepositoriesFactory) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{repos: repos}
}

func (h GetDeliveriesQueryHandler) Handle(ctx context.Context, query GetDeliveriesQuery) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.repos.Create().DeliveryRepository()

	var (
		deliveries []*delivery.Delivery
		err        error
	)
	switch query.scope {
	case activeDeliveries:
		deliveries, err = repo.GetActive(ctx)
	case orderDeliveries:
		deliveries, err = repo.GetByOrder(ctx, query.id)
	case courierDeliveries:
		deliveries, err = repo.GetByCourier(ctx, query.id)
	default:
		deliveries, err = repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return mapAll(deliveries, newDeliveryResponse), nil
}
