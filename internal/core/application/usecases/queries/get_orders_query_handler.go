package queries

import (
	"context"

	"deliverysystem/internal/core/domain/model/order"
)

// GetOrdersQueryHandler lists orders in storage order. A customer without
// orders gets an empty list; the customer itself is not looked up.
type GetOrdersQueryHandler struct {
	repos RepositoriesFactory
}

func NewGetOrdersQueryHandler(repos RepositoriesFactory) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{repos: repos}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.repos.Create().OrderRepository()

	var (
		orders []*order.Order
		err    error
	)
	if customerID, ok := query.CustomerID(); ok {
		orders, err = repo.GetByCustomer(ctx, customerID)
	} else {
		orders, err = repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return mapAll(orders, newOrderResponse), nil
}
