package queries

import "context"

// GetByIDQueryHandler serves the single-aggregate lookups. Unknown ids fail
// with errs.ErrObjectNotFound.
type GetByIDQueryHandler struct {
	repos RepositoriesFactory
}

func NewGetByIDQueryHandler(repos RepositoriesFactory) GetByIDQueryHandler {
	return GetByIDQueryHandler{repos: repos}
}

func (h GetByIDQueryHandler) Customer(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}
	c, err := h.repos.Create().CustomerRepository().Get(ctx, query.CustomerID())
	if err != nil {
		return CustomerResponse{}, err
	}
	return newCustomerResponse(c), nil
}

func (h GetByIDQueryHandler) Courier(ctx context.Context, query GetCourierQuery) (CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierResponse{}, err
	}
	c, err := h.repos.Create().CourierRepository().Get(ctx, query.CourierID())
	if err != nil {
		return CourierResponse{}, err
	}
	return newCourierResponse(c), nil
}

func (h GetByIDQueryHandler) Order(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}
	o, err := h.repos.Create().OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	return newOrderResponse(o), nil
}

func (h GetByIDQueryHandler) Delivery(ctx context.Context, query GetDeliveryQuery) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}
	d, err := h.repos.Create().DeliveryRepository().Get(ctx, query.DeliveryID())
	if err != nil {
		return DeliveryResponse{}, err
	}
	return newDeliveryResponse(d), nil
}
